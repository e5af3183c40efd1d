package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/taghelper/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌─┐┬ ┬┌─┐┬  ┌─┐┌─┐┬─┐
   │ ├─┤│ ┬├─┤├┤ │  ├─┘├┤ ├┬┘
   ┴ ┴ ┴└─┘┴ ┴└─┘┴─┘┴  └─┘┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "taghelper",
		Short: "Tag helper rendering support tools",
		Long: `taghelper is the companion CLI for the taghelper library.

It works with directive manifests (the JSON rule sets a template
evaluator uses to route tags to native directives):

  • match:   test which directive claims a tag invocation
  • preview: serve a page through the fragment buffer with live reload`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		matchCmd(),
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
