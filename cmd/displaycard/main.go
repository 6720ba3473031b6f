package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(reportError(err))
	}
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "displaycard",
		Short: "Serve and export the DisplayCard showcase",
		Long: `displaycard renders the DisplayCard component demo.

The page lists two products from the catalog, one as a default card
and one as a featured card. Images show a pulsing skeleton until the
browser reports that they loaded.

  serve   run the live server
  render  write the static page to stdout
  export  write the static page to a directory or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default displaycard.json or displaycard.toml)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file loaded before the environment")

	cmd.AddCommand(
		serveCmd(opts),
		renderCmd(opts),
		exportCmd(opts),
		versionCmd(),
	)
	return cmd
}

// reportError prints err and returns the exit code.
func reportError(err error) int {
	if !logging.IsTerminal(os.Stderr) {
		errors.DisableColors()
	}

	var coded *errors.Error
	if stderrors.As(err, &coded) {
		fmt.Fprint(os.Stderr, coded.Format())
		return 1
	}
	if logging.IsTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	return 1
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
