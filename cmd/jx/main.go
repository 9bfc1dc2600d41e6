// Copyright 2025 easymvp
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command jx is a driver around the jx resumable JSON parser: it checks
// JSON fixtures from the command line or stdin and can run the package's
// built-in acceptance corpus.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/easyagent-dev/jx"
	"github.com/easyagent-dev/jx/cmd/jx/internal/clilog"
)

type options struct {
	all     bool
	check   string
	verbose bool
	halt    bool
	format  string
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "jx [flags]",
		Short:         "Check JSON input against the jx resumable parser",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args, os.Stdin, os.Stdout)
		},
	}

	registerFlags(rootCmd, opts)

	err := rootCmd.Execute()
	if opts.halt {
		haltBeforeExit(os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// registerFlags mirrors jx_getopt's single-dash, bundlable short-flag
// grammar (-a, -c <string>, -p, -v, combinable as -avc <string>): pflag's
// shorthand registration lets these bundle the same way without any custom
// parsing.
func registerFlags(cmd *cobra.Command, opts *options) *pflag.FlagSet {
	flags := cmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, "run the built-in acceptance corpus")
	flags.StringVarP(&opts.check, "check", "c", "", "check a literal JSON string")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVarP(&opts.halt, "halt", "p", false, "pause for a keypress before exiting")
	flags.StringVar(&opts.format, "log-format", "text", "log format: text or json")
	return flags
}

func run(opts *options, args []string, stdin io.Reader, stdout io.Writer) error {
	handler, err := clilog.New(stdout, opts.verbose, opts.format)
	if err != nil {
		return err
	}
	logger := slog.New(handler)

	ran := false

	if opts.all {
		ran = true
		if !runAcceptance(logger, stdout) {
			return fmt.Errorf("acceptance corpus reported failures")
		}
	}

	if opts.check != "" {
		ran = true
		if err := checkOne(logger, stdout, "(-c argument)", []byte(opts.check)); err != nil {
			return err
		}
	}

	for _, path := range args {
		ran = true
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := checkOne(logger, stdout, path, data); err != nil {
			return err
		}
	}

	if !ran {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return checkOne(logger, stdout, "(stdin)", data)
	}

	return nil
}

func checkOne(logger *slog.Logger, stdout io.Writer, label string, data []byte) error {
	ctx := jx.NewContext()
	status := ctx.ParseChunk(data)

	if status != jx.StatusComplete {
		logger.Debug("parse incomplete or failed", "source", label, "status", status)
		return fmt.Errorf("%s: %s", label, ctx.GetErrorMessage())
	}

	v := ctx.GetResult()
	fmt.Fprintf(stdout, "%s: ok (%s)\n", label, v.Type())
	return nil
}

func runAcceptance(logger *slog.Logger, stdout io.Writer) bool {
	results := runCorpus()

	allPassed := true
	for _, r := range results {
		status := "PASS"
		if !r.pass {
			status = "FAIL"
			allPassed = false
		}
		fmt.Fprintf(stdout, "%-4s %s\n", status, r.name)
		if !r.pass {
			logger.Warn("corpus case mismatch", "case", r.name, "message", r.message)
		}
	}

	return allPassed
}

// haltBeforeExit pauses for a single keypress before the process exits,
// matching the original CLI's "-p" flag.
func haltBeforeExit(stdin *os.File, stdout io.Writer) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	fmt.Fprint(stdout, "press any key to exit...")

	state, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(stdout)
		return
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	_, _ = stdin.Read(buf)
	fmt.Fprintln(stdout)
}
