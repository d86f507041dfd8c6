package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"goesfind/config"
)

// Integration tests for the products command
// These tests hit the public noaa-goes16 bucket and are skipped by default
// To run these tests, set the environment variable S3_INTEGRATION_TEST=true

func TestProductsCommand(t *testing.T) {
	if os.Getenv("S3_INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test; set S3_INTEGRATION_TEST=true to run")
	}

	oldCfg := cfg
	cfg = &config.Config{Region: "us-east-1", Satellite: "16"}
	defer func() { cfg = oldCfg }()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	productsCmd.SetArgs([]string{})
	err := productsCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Fatalf("Products command failed: %v", err)
	}

	if !strings.Contains(output, "noaa-goes16") {
		t.Errorf("Output doesn't contain bucket name: %s", output)
	}

	if !strings.Contains(output, "total_products") {
		t.Errorf("Output doesn't contain total_products: %s", output)
	}
}
