package main

import (
	"context"
	"net/http"
	"net/http/httptest"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		outDir string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the site as static HTML",
		Long: `Render every showcase page and write the result to a local
directory, or to an S3 bucket when one is configured.

Examples:
  weft publish
  weft publish --out ./dist
  weft publish --s3-bucket my-site --s3-prefix preview/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), outDir, bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from weft.json)")
	cmd.Flags().StringVar(&bucket, "s3-bucket", "", "Publish to this S3 bucket instead of a directory")
	cmd.Flags().StringVar(&prefix, "s3-prefix", "", "Key prefix inside the S3 bucket")
	cmd.Flags().StringVar(&region, "s3-region", "", "AWS region override")

	return cmd
}

func runPublish(ctx context.Context, outDir, bucket, prefix, region string) error {
	cfg := loadConfigOrDefault()
	if outDir == "" {
		outDir = cfg.OutputPath()
	}
	if bucket == "" {
		bucket = cfg.Publish.S3Bucket
	}
	if prefix == "" {
		prefix = cfg.Publish.S3Prefix
	}
	if region == "" {
		region = cfg.Publish.S3Region
	}

	var store publish.Store
	if bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return err
		}
		if region != "" {
			awsCfg.Region = region
		}
		store = publish.NewS3Store(s3.NewFromConfig(awsCfg), bucket, prefix)
		info("Publishing to s3://%s/%s", bucket, prefix)
	} else {
		store = publish.NewDiskStore(outDir)
		info("Publishing to %s", outDir)
	}

	pages := make([]publish.Page, 0, len(showcaseRoutes))
	for _, route := range showcaseRoutes {
		req := httptest.NewRequest(http.MethodGet, route.Pattern, nil)
		pages = append(pages, publish.Page{
			Path:   route.Pattern,
			Title:  routeTitle(route.Pattern),
			Result: route.Page(req),
		})
	}

	publisher := publish.NewPublisher(store,
		publish.WithTitle(cfg.Name),
		publish.WithStyleSheets(cfg.StyleSheets...),
	)
	if err := publisher.Publish(ctx, pages, nil); err != nil {
		return err
	}

	success("Published %d pages", len(pages))
	return nil
}
