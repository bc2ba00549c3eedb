// Package pager owns the output side of glint: a pager process when stdout
// is a terminal, plain stdout otherwise.
package pager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
)

// Output is the destination for rendered text. Writes go either to a spawned
// pager's stdin or straight to stdout; Close waits for the pager to exit.
type Output struct {
	w     io.Writer
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// New chooses and starts the output sink. pagerCmd overrides the
// GLINT_PAGER and PAGER environment lookup; noPager forces plain stdout.
// When the pager resolves to bare "less" it gets -R so color sequences pass
// through.
func New(pagerCmd string, noPager bool) (*Output, error) {
	if noPager || !isatty.IsTerminal(os.Stdout.Fd()) {
		return &Output{w: os.Stdout}, nil
	}

	if pagerCmd == "" {
		pagerCmd = os.Getenv("GLINT_PAGER")
	}
	if pagerCmd == "" {
		pagerCmd = os.Getenv("PAGER")
	}
	if pagerCmd == "" {
		pagerCmd = "less"
	}

	args := strings.Fields(pagerCmd)
	if filepath.Base(args[0]) == "less" && len(args) == 1 {
		args = append(args, "-R")
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("creating pager pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting pager %q: %w", args[0], err)
	}
	return &Output{w: stdin, cmd: cmd, stdin: stdin}, nil
}

func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Close shuts the write side and waits for the pager, if one is running.
func (o *Output) Close() error {
	if o.cmd == nil {
		return nil
	}
	o.stdin.Close()
	return o.cmd.Wait()
}

// IsClosed reports whether err means the downstream consumer went away, as
// happens when the user quits the pager before the diff is fully written.
// That is an expected outcome, not an error.
func IsClosed(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
