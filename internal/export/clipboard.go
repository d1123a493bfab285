package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrNoClipboard is returned when every clipboard in a chain failed.
var ErrNoClipboard = errors.New("no clipboard available")

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
	Name() string
}

// Chain tries each clipboard in order and stops at the first success.
type Chain []Clipboard

func (c Chain) Name() string {
	names := make([]string, len(c))
	for i, cb := range c {
		names[i] = cb.Name()
	}
	return strings.Join(names, ",")
}

func (c Chain) WriteText(ctx context.Context, text string) error {
	_, err := c.Copy(ctx, text)
	return err
}

// Copy is WriteText that also reports which clipboard took the text.
func (c Chain) Copy(ctx context.Context, text string) (string, error) {
	var errs []error
	for _, cb := range c {
		if err := cb.WriteText(ctx, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cb.Name(), err))
			continue
		}
		return cb.Name(), nil
	}
	return "", errors.Join(append([]error{ErrNoClipboard}, errs...)...)
}

// CommandClipboard pipes text into a copy command such as pbcopy or xclip.
type CommandClipboard struct {
	Command string
	Args    []string
}

func (c CommandClipboard) Name() string { return c.Command }

func (c CommandClipboard) WriteText(ctx context.Context, text string) error {
	path, err := exec.LookPath(c.Command)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// OSC52Clipboard asks the terminal to set the clipboard with an OSC 52
// escape sequence. It works over SSH but cannot confirm the copy happened.
type OSC52Clipboard struct {
	Out  io.Writer
	Tmux bool
}

func (OSC52Clipboard) Name() string { return "osc52" }

func (o OSC52Clipboard) WriteText(_ context.Context, text string) error {
	if o.Out == nil {
		return errors.New("no terminal output")
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// SystemClipboard returns the platform's copy commands followed by the OSC 52
// fallback writing to term.
func SystemClipboard(term io.Writer, tmux bool) Chain {
	var chain Chain
	switch runtime.GOOS {
	case "darwin":
		chain = append(chain, CommandClipboard{Command: "pbcopy"})
	case "windows":
		chain = append(chain, CommandClipboard{Command: "clip.exe"})
	default:
		chain = append(chain,
			CommandClipboard{Command: "wl-copy"},
			CommandClipboard{Command: "xclip", Args: []string{"-selection", "clipboard"}},
			CommandClipboard{Command: "xsel", Args: []string{"--clipboard", "--input"}},
		)
	}
	return append(chain, OSC52Clipboard{Out: term, Tmux: tmux})
}
