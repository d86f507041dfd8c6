package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"goesfind/internal/goesfile"
	"goesfind/internal/models"
	"goesfind/internal/s3client"
	"goesfind/pkg/utils"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the GOES file closest to a requested time",
	Long: `Find the file(s) whose acquisition start time is closest to the requested
time and download them to a local directory.

If no destination is specified, the files will be downloaded to the current
directory.`,
	Example: `  # Download the most recent CONUS multispectral image
  goesfind download

  # Download to a specific destination
  goesfind download --destination /tmp/goes/

  # Download bands 2 and 13 of a specific moment
  goesfind download --product ABI-L2-CMIP --band 2 --band 13 --time "2023-06-01 17:30"`,
	Run: func(cmd *cobra.Command, args []string) {
		runDownload(cmd)
	},
}

func runDownload(cmd *cobra.Command) {
	destination, _ := cmd.Flags().GetString("destination")

	if destination == "" {
		destination = "."
	}

	client, err := s3client.New(cfg)
	if err != nil {
		utils.PrintError(err, "download")
		return
	}

	startTime := time.Now()

	records, _, err := findNearestRecords(cmd, client)
	if err != nil {
		utils.PrintError(err, "download")
		return
	}
	if records == nil {
		fmt.Println("No data matched the request.")
		return
	}

	number, err := goesfile.NormalizeSatellite(getSatellite(cmd))
	if err != nil {
		utils.PrintError(err, "download")
		return
	}
	bucket := goesfile.Bucket(number)

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	var items []models.DownloadItem
	var totalSize int64

	for _, record := range records {
		if isVerbose(cmd) {
			cmd.Printf("Downloading %s\n", record.Key)
		}

		localPath, size, err := client.DownloadFile(ctx, bucket, record.Key, destination)
		if err != nil {
			utils.PrintError(err, "download")
			return
		}

		items = append(items, models.DownloadItem{
			RemotePath: record.Key,
			LocalPath:  localPath,
			Size:       size,
		})
		totalSize += size
	}

	result := models.DownloadResult{
		Bucket:           bucket,
		Items:            items,
		TotalFiles:       len(items),
		TotalSizeBytes:   totalSize,
		TotalSizeHuman:   utils.FormatBytes(totalSize),
		OperationTime:    utils.FormatTime(startTime),
		DownloadDuration: time.Since(startTime).String(),
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "download")
		return
	}

	if isVerbose(cmd) {
		cmd.Println("Download operation completed successfully")
	}
}

func init() {
	downloadCmd.Flags().String("product", "", "GOES product name without domain suffix (default from config)")
	downloadCmd.Flags().String("domain", "", "Coverage domain: C, F, M1 or M2 (default from config)")
	downloadCmd.Flags().IntSlice("band", nil, "ABI channel number to keep (repeatable)")
	downloadCmd.Flags().String("time", "", "Requested time (default: now)")
	downloadCmd.Flags().StringP("destination", "d", "", "Local destination path (default: current directory)")
	downloadCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}
