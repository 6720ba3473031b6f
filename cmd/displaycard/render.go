package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/displaycard/pkg/publish"
)

func renderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Write the static page to stdout",
		Long: `Fetch the catalog once and write the page as standalone HTML.

The page needs no server: an inline script drives the image
skeletons in the browser.

Examples:
  displaycard render > index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			w := bufio.NewWriter(os.Stdout)
			if err := publish.Export(w, a.site.Static(cmd.Context())); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}
