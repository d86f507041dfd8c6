package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"goesfind/internal/goesfile"
	"goesfind/internal/inventory"
	"goesfind/internal/models"
	"goesfind/internal/s3client"
	"goesfind/pkg/utils"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find the GOES file closest to a requested time",
	Long: `Find the file (or one file per requested band) whose acquisition start time
is closest to the requested time.

A one hour window either side of the requested time is searched. The domain
selects the coverage: C=CONUS, F=Full Disk, M1/M2=Mesoscale 1 and 2.`,
	Example: `  # Most recent CONUS multispectral image from GOES-East
  goesfind find

  # A specific moment from GOES-West
  goesfind find --satellite GOES-WEST --time "2023-06-01 17:30"

  # Bands 2 and 13 of mesoscale sector 1
  goesfind find --product ABI-L2-CMIP --domain M1 --band 2 --band 13`,
	Run: func(cmd *cobra.Command, args []string) {
		runFind(cmd)
	},
}

func runFind(cmd *cobra.Command) {
	client, err := s3client.New(cfg)
	if err != nil {
		utils.PrintError(err, "find")
		return
	}

	records, at, err := findNearestRecords(cmd, client)
	if err != nil {
		utils.PrintError(err, "find")
		return
	}
	if records == nil {
		fmt.Println("No data matched the request.")
		return
	}

	satellite := getSatellite(cmd)
	number, err := goesfile.NormalizeSatellite(satellite)
	if err != nil {
		utils.PrintError(err, "find")
		return
	}

	result := models.FindResult{
		Bucket:        goesfile.Bucket(number),
		Satellite:     goesfile.Platform(number),
		Product:       records[0].Product,
		Domain:        records[0].Domain,
		RequestedTime: utils.FormatTime(at),
		NearestTime:   utils.FormatTime(records[0].Start),
		Files:         records,
		TotalFiles:    len(records),
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "find")
		return
	}

	if isVerbose(cmd) {
		cmd.Printf("Nearest file is %s from the requested time\n",
			records[0].Start.Sub(at).Abs().String())
	}
}

// findNearestRecords runs the nearest-match lookup shared by find and
// download. A nil record slice with a nil error is the no-match case.
func findNearestRecords(cmd *cobra.Command, client *s3client.Client) ([]goesfile.FileRecord, time.Time, error) {
	product, _ := cmd.Flags().GetString("product")
	domain, _ := cmd.Flags().GetString("domain")
	bands, _ := cmd.Flags().GetIntSlice("band")
	timeFlag, _ := cmd.Flags().GetString("time")

	if product == "" {
		product = cfg.Product
	}
	if domain == "" {
		domain = cfg.Domain
	}

	at := time.Now().UTC()
	if timeFlag != "" {
		parsed, err := parseTimeFlag(timeFlag)
		if err != nil {
			return nil, at, err
		}
		at = parsed
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Looking for %s%s from satellite %s nearest to %s\n",
			product, domain, getSatellite(cmd), at.Format(time.RFC3339))
	}

	service := inventory.New(client, slog.Default())

	records, err := service.FindNearest(ctx, inventory.FindInput{
		Satellite: getSatellite(cmd),
		Product:   product,
		Domain:    domain,
		Bands:     bands,
		At:        at,
	})
	if err != nil {
		return nil, at, err
	}

	return records, at, nil
}

func init() {
	findCmd.Flags().String("product", "", "GOES product name without domain suffix (default from config)")
	findCmd.Flags().String("domain", "", "Coverage domain: C, F, M1 or M2 (default from config)")
	findCmd.Flags().IntSlice("band", nil, "ABI channel number to keep (repeatable)")
	findCmd.Flags().String("time", "", "Requested time (default: now)")
	findCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
