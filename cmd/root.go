package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"goesfind/config"
	"goesfind/internal/goesfile"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "goesfind",
	Short: "Discover GOES satellite data in the NOAA public buckets",
	Long: `goesfind is a command-line tool for discovering GOES-R series satellite data
files hosted in NOAA's public S3 buckets (noaa-goes16/17/18).
It lists the hourly partitions of a product, parses the structured file names
and selects the files matching a time window or closest to a requested time.
Configuration is loaded from .env file or environment variables`,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(productsCmd)

	rootCmd.PersistentFlags().StringP("satellite", "s", "", "Override satellite from config (16, G17, GOES-EAST, ...)")
	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Override bucket name derived from the satellite")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func getSatellite(cmd *cobra.Command) string {
	satellite, _ := cmd.Flags().GetString("satellite")
	if satellite != "" {
		return satellite
	}
	return cfg.Satellite
}

func getBucketName(cmd *cobra.Command) (string, error) {
	bucket, _ := cmd.Flags().GetString("bucket")
	if bucket != "" {
		return bucket, nil
	}

	number, err := goesfile.NormalizeSatellite(getSatellite(cmd))
	if err != nil {
		return "", err
	}
	return goesfile.Bucket(number), nil
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimeFlag(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", value)
}
