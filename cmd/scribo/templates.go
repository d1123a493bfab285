package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/prompt"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates [tool]",
		Short: "List content tools, or one tool's templates and options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				listTools(out, catalog.Default)
				return nil
			}
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q (choose from %s)", err, args[0], kindNames())
			}
			c, _ := catalog.Default.Tool(kind)
			showTool(out, c)
			return nil
		},
	}
}

func listTools(w io.Writer, reg *catalog.Registry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tNAME\tTEMPLATES\tDESCRIPTION")
	for _, c := range reg.Tools() {
		fmt.Fprintf(tw, "%s\t%s %s\t%d\t%s\n", c.Kind, c.Icon, c.Name, len(c.Templates), c.Description)
	}
	tw.Flush()
}

func showTool(w io.Writer, c catalog.ToolConfig) {
	fmt.Fprintf(w, "%s %s: %s\n\n", c.Icon, c.Name, c.Description)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE\tNAME\tFILLS")
	for _, t := range c.Templates {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, strings.Join(prompt.Placeholders(t.Prompt), " "))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPlatforms: %s\n", strings.Join(c.Platforms, ", "))
	fmt.Fprintf(w, "%s: %s\n", c.DurationLabel, strings.Join(c.Durations, ", "))
	fmt.Fprintf(w, "Audiences: %s\n", strings.Join(c.Audiences, ", "))
}
