package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"goesfind/config"
)

// Integration tests for the find command
// These tests hit the public noaa-goes16 bucket and are skipped by default
// To run these tests, set the environment variable S3_INTEGRATION_TEST=true

func TestFindCommand(t *testing.T) {
	if os.Getenv("S3_INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test; set S3_INTEGRATION_TEST=true to run")
	}

	oldCfg := cfg
	cfg = &config.Config{
		Region:    "us-east-1",
		Satellite: "16",
		Product:   "ABI-L2-MCMIP",
		Domain:    "C",
	}
	defer func() { cfg = oldCfg }()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	findCmd.SetArgs([]string{
		"--time", "2023-01-01 12:00",
	})
	err := findCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Fatalf("Find command failed: %v", err)
	}

	if !strings.Contains(output, "nearest_time") {
		t.Errorf("Output doesn't contain nearest_time: %s", output)
	}

	if !strings.Contains(output, "ABI-L2-MCMIP") {
		t.Errorf("Output doesn't contain product name: %s", output)
	}

	if !strings.Contains(output, "G16") {
		t.Errorf("Output doesn't contain platform: %s", output)
	}
}
