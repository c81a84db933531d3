package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/jsontree"
	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/spf13/cobra"
)

func main() {
	const (
		exitSuccess   = 0
		exitIOError   = 2
		exitHasErrors = 3
	)

	var (
		tokensOnly bool
		quiet      bool
	)

	rootCmd := &cobra.Command{
		Use:           "jsontree [file]",
		Short:         "Parse a JSON-like file and report its diagnostics",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			var err error
			if len(args) == 1 {
				content, err = os.ReadFile(args[0])
			} else {
				content, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
				os.Exit(exitIOError)
			}
			source := string(content)

			if tokensOnly {
				for tok := range jsontree.Tokenize(source) {
					fmt.Fprintf(cmd.OutOrStdout(), "%T len=%d\n", tok, tok.Len())
				}
				return nil
			}

			root := jsontree.Parse(source)
			if !quiet {
				printSummary(cmd.OutOrStdout(), root)
			}
			for _, rec := range root.Errors {
				printDiagnostic(os.Stderr, source, rec)
			}
			if len(root.Errors) > 0 {
				os.Exit(exitHasErrors)
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&tokensOnly, "tokens", false, "print the raw token stream instead of parsing")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the tree summary, printing only diagnostics")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitIOError)
	}
	os.Exit(exitSuccess)
}

func printSummary(w io.Writer, root *jsontree.Root) {
	fmt.Fprintf(w, "length: %d\n", root.Syntax.Len())
	fmt.Fprintf(w, "errors: %d\n", len(root.Errors))
	terminals := root.Syntax.TerminalsInRange(0, root.Syntax.Len())
	fmt.Fprintf(w, "terminals: %d\n", len(terminals))
}

func printDiagnostic(w io.Writer, source string, rec jsontree.Record) {
	severity := "error"
	if rec.Severity == errs.SeverityWarning {
		severity = "warning"
	}
	fmt.Fprintf(w, "%s: %s at %d (len %d)\n", severity, rec.Code, rec.Start, rec.Length)
	if rec.Start >= 0 && rec.Start+rec.Length <= len(source) {
		fmt.Fprintf(w, "  %q\n", source[rec.Start:rec.Start+rec.Length])
	}
}
