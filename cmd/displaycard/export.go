package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/publish"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var (
		dir    string
		bucket string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the static page to a directory or S3",
		Long: `Render the static page and publish it.

The target comes from the publish section of the config or from
flags. A bucket takes precedence over a directory. S3 credentials
are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  displaycard export --dir=dist
  displaycard export --bucket=my-site --output=demo.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			pc := a.cfg.Publish
			if dir != "" {
				pc.Dir = dir
			}
			if bucket != "" {
				pc.S3Bucket = bucket
			}
			if output != "" {
				pc.Output = output
			}

			var target publish.Publisher
			switch {
			case pc.S3Bucket != "":
				target, err = publish.NewS3Publisher(publish.NewS3Client(pc.S3Region), pc.S3Bucket, pc.S3Prefix)
				if err != nil {
					return err
				}
			case pc.Dir != "":
				target = publish.NewDirPublisher(pc.Dir)
			default:
				return errors.New(errors.CodePublishTarget)
			}

			ctx := cmd.Context()
			body, err := publish.ExportBytes(a.site.Static(ctx))
			if err != nil {
				return err
			}
			where, err := target.Publish(ctx, pc.Output, body)
			if err != nil {
				return err
			}

			a.log.Info("exported", "location", where, "bytes", len(body))
			success("Exported %s", where)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default publish.dir)")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default publish.s3_bucket)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File or object name (default publish.output)")

	return cmd
}
