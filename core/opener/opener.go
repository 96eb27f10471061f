package opener

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tristendillon/related/core/config"
	"github.com/tristendillon/related/core/finder"
	"github.com/tristendillon/related/core/logger"
)

// PrintOpener writes the chosen path instead of opening it, for shell and
// editor integrations that open the file themselves.
type PrintOpener struct {
	Out io.Writer
}

func (p *PrintOpener) Open(_ context.Context, path string, _ bool) error {
	_, err := fmt.Fprintln(p.Out, path)
	return err
}

type EditorOpener struct {
	Command     string
	Args        []string
	PreviewArgs []string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

func (e *EditorOpener) Open(ctx context.Context, path string, preview bool) error {
	args := append([]string{}, e.Args...)
	if preview {
		args = append(args, e.PreviewArgs...)
	}
	args = append(args, path)

	logger.Debug("Running editor: %s %s", e.Command, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, e.Command, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", e.Command, err)
	}
	return nil
}

// New picks the editor from the config, then $VISUAL, then $EDITOR. With
// none configured the path is printed to stdout.
func New(cfg config.Editor, stdin io.Reader, stdout, stderr io.Writer) finder.Opener {
	command := cfg.Command
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if command != "" {
			break
		}
		command = os.Getenv(env)
	}

	fields := strings.Fields(command)
	if len(fields) == 0 {
		logger.Debug("No editor configured, printing paths")
		return &PrintOpener{Out: stdout}
	}

	return &EditorOpener{
		Command:     fields[0],
		Args:        append(fields[1:], cfg.Args...),
		PreviewArgs: cfg.PreviewArgs,
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
	}
}
