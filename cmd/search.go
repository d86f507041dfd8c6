package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"goesfind/internal/inventory"
	"goesfind/internal/models"
	"goesfind/internal/s3client"
	"goesfind/pkg/utils"
)

var searchCmd = &cobra.Command{
	Use:   "search [product]",
	Short: "List GOES files for a product within a time range",
	Long: `List all files of a product stored between two times.

The product argument is the full bucket prefix including the domain suffix,
e.g. ABI-L2-MCMIPC for the CONUS multispectral cloud and moisture product.
Hourly partitions between start and end are listed and each file name is
parsed into its acquisition metadata.`,
	Example: `  # List an hour of CONUS multispectral imagery
  goesfind search ABI-L2-MCMIPC --start "2023-06-01 17:00" --end "2023-06-01 18:00"

  # Only bands 2 and 13 of the single-channel product
  goesfind search ABI-L2-CMIPC --start "2023-06-01 17:00" --end "2023-06-01 18:00" --band 2 --band 13

  # Search GOES-West instead
  goesfind search ABI-L2-MCMIPF --satellite 18 --start "2023-06-01 17:00" --end "2023-06-01 18:00"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd, args)
	},
}

func runSearch(cmd *cobra.Command, args []string) {
	product := args[0]
	startFlag, _ := cmd.Flags().GetString("start")
	endFlag, _ := cmd.Flags().GetString("end")
	bands, _ := cmd.Flags().GetIntSlice("band")
	refresh, _ := cmd.Flags().GetBool("refresh")

	start, err := parseTimeFlag(startFlag)
	if err != nil {
		utils.PrintError(err, "search")
		return
	}

	end, err := parseTimeFlag(endFlag)
	if err != nil {
		utils.PrintError(err, "search")
		return
	}

	bucket, err := getBucketName(cmd)
	if err != nil {
		utils.PrintError(err, "search")
		return
	}

	client, err := s3client.New(cfg)
	if err != nil {
		utils.PrintError(err, "search")
		return
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Searching bucket %s for %s between %s and %s\n",
			bucket, product, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	service := inventory.New(client, slog.Default())

	records, err := service.Search(ctx, inventory.SearchInput{
		Bucket:  bucket,
		Product: product,
		Start:   start,
		End:     end,
		Bands:   bands,
		Refresh: refresh,
	})
	if err != nil {
		utils.PrintError(err, "search")
		return
	}

	result := models.SearchResult{
		Bucket:     bucket,
		Product:    product,
		Start:      utils.FormatTime(start),
		End:        utils.FormatTime(end),
		Files:      records,
		TotalFiles: len(records),
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "search")
		return
	}

	if isVerbose(cmd) {
		cmd.Printf("Found %d files\n", len(records))
	}
}

func init() {
	searchCmd.Flags().String("start", "", "Start of the time range (required)")
	searchCmd.Flags().String("end", "", "End of the time range (required)")
	if err := searchCmd.MarkFlagRequired("start"); err != nil {
		utils.PrintError(err, "search")
		return
	}
	if err := searchCmd.MarkFlagRequired("end"); err != nil {
		utils.PrintError(err, "search")
		return
	}

	searchCmd.Flags().IntSlice("band", nil, "ABI channel number to keep (repeatable)")
	searchCmd.Flags().Bool("refresh", true, "Bypass the remembered partition listings")
	searchCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
