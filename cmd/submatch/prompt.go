package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// confirm gates the apply phase. --yes answers for the user; otherwise a
// prompt is shown, but only when stdin is actually interactive.
func (e *commandEnv) confirm(cmd *cobra.Command, question string) (bool, error) {
	if e.assumeYes != nil && *e.assumeYes {
		return true, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		return false, errors.New("stdin is not a terminal; re-run with --yes to apply without prompting")
	}
	return promptYesNo(in, cmd.OutOrStdout(), question)
}

// promptYesNo asks a yes/no question. Empty input defaults to yes.
func promptYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [Y/n] ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
