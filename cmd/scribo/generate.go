package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/export"
	"github.com/joestump/scribo/internal/keystore"
	"github.com/joestump/scribo/internal/prompt"
)

type generateOptions struct {
	tool     string
	template string
	fields   prompt.Fields
	apiKey   string
	preview  bool
	outDir   string
	text     bool
	print    bool
	markdown bool
	copy     bool
}

func newGenerateCmd() *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Build a prompt and generate content with the backend",
		Example: `  scribo generate --tool script --template tiktok-viral --duration "1 minute" "home espresso"
  scribo generate --tool hashtag --platform Instagram --copy "sourdough"
  scribo generate --tool title --template youtube-seo --preview "rust for beginners"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.fields.Topic = args[0]
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			kind, err := catalog.ParseKind(o.tool)
			if err != nil {
				return fmt.Errorf("%w: %q (choose from %s)", err, o.tool, kindNames())
			}
			if o.template != "" {
				if _, ok := catalog.Default.Lookup(kind, o.template); !ok {
					return fmt.Errorf("unknown template %q for %s; see `scribo templates %s`", o.template, kind, kind)
				}
			}

			text := prompt.Build(catalog.Default, kind, o.template, o.fields)
			if o.preview {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("nothing to generate: give a topic or a template")
			}

			ctx := cmd.Context()
			key := o.apiKey
			if key == "" {
				if key, err = keystore.NewFileStore(cfg.KeyFile).Load(ctx); err != nil {
					return err
				}
			}

			c := client.New(cfg.Endpoint.Base, client.WithTimeout(cfg.Endpoint.Timeout))
			content, err := c.Generate(ctx, kind, text, key)
			if errors.Is(err, client.ErrMissingAPIKey) {
				return fmt.Errorf("%s Run `scribo key set`", client.MissingKeyMessage)
			}
			if err != nil {
				log.Debug().Err(err).Msg("generate")
				return errors.New(client.Message(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return exportContent(cmd, o, export.Artifact{Kind: kind, Content: content, GeneratedAt: time.Now()})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.tool, "tool", "t", string(catalog.Script), "content tool: "+kindNames())
	f.StringVar(&o.template, "template", "", "template id (see `scribo templates`)")
	f.StringVar(&o.fields.Platform, "platform", "", "target platform")
	f.StringVar(&o.fields.Duration, "duration", "", "duration, length, quantity or number")
	f.StringVar(&o.fields.Audience, "audience", "", "target audience")
	f.StringVar(&o.apiKey, "api-key", "", "API key for this call instead of the stored key")
	f.BoolVar(&o.preview, "preview", false, "print the built prompt without generating")
	f.StringVarP(&o.outDir, "out", "o", "", "directory for exported files (default: current directory)")
	f.BoolVar(&o.text, "txt", false, "save the content as a text file")
	f.BoolVar(&o.print, "print", false, "save the content as a printable HTML page")
	f.BoolVar(&o.markdown, "markdown", false, "render the printable page as Markdown")
	f.BoolVar(&o.copy, "copy", false, "copy the content to the clipboard")
	return cmd
}

func exportContent(cmd *cobra.Command, o generateOptions, a export.Artifact) error {
	ctx := cmd.Context()
	var exp export.Exporter = export.DirExporter{Dir: o.outDir, Markdown: o.markdown}
	if o.text || (o.outDir != "" && !o.print) {
		path, err := exp.ExportText(ctx, a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "saved", path)
	}
	if o.print {
		path, err := exp.ExportPrintable(ctx, a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "saved", path, "(open it in a browser to print or save as PDF)")
	}
	if o.copy {
		name, err := export.SystemClipboard(os.Stderr, os.Getenv("TMUX") != "").Copy(ctx, a.Content)
		if err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard via", name)
	}
	return nil
}

func kindNames() string {
	names := make([]string, 0, len(catalog.Kinds()))
	for _, k := range catalog.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
