package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"goesfind/internal/models"
	"goesfind/internal/s3client"
	"goesfind/pkg/utils"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the products available in a GOES bucket",
	Long: `List the product prefixes at the top level of a GOES bucket.
The bucket is derived from the configured satellite unless overridden with
the --satellite or --bucket flags.`,
	Example: `  # Products on GOES-East
  goesfind products

  # Products on GOES-West
  goesfind products --satellite 18`,
	Run: func(cmd *cobra.Command, args []string) {
		runProducts(cmd)
	},
}

func runProducts(cmd *cobra.Command) {
	bucket, err := getBucketName(cmd)
	if err != nil {
		utils.PrintError(err, "products")
		return
	}

	client, err := s3client.New(cfg)
	if err != nil {
		utils.PrintError(err, "products")
		return
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Listing products in bucket: %s\n", bucket)
	}

	products, err := client.ListCommonPrefixes(ctx, bucket)
	if err != nil {
		utils.PrintError(err, "products")
		return
	}

	result := models.ProductListing{
		Bucket:        bucket,
		Products:      products,
		TotalProducts: len(products),
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "products")
		return
	}

	if isVerbose(cmd) {
		cmd.Printf("Found %d products\n", len(products))
	}
}

func init() {
	productsCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
