// Command credseal seals passwords and credential payloads with a shared
// secret before they are sent to the /login and /register endpoints.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/kbukum/credseal/errors"
)

// Error output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
)

func main() {
	os.Exit(runMain(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runMain executes the root command and reports a failure on stderr.
// It returns the process exit code.
func runMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	format, _ := cmd.PersistentFlags().GetString("output")
	reportError(stderr, format, err)
	return 1
}

func reportError(w io.Writer, format string, err error) {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if enc.Encode(errors.Wrap(err).ToResponse()) == nil {
			return
		}
	}
	fmt.Fprintln(w, color.RedString("✗"), err)
}
