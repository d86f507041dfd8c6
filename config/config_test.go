package config

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := getEnv("TEST_VAR", "default_value")
	if result != "test_value" {
		t.Errorf("getEnv() = %s, want %s", result, "test_value")
	}

	result = getEnv("NON_EXISTENT_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}

	os.Setenv("EMPTY_VAR", "")
	defer os.Unsetenv("EMPTY_VAR")

	result = getEnv("EMPTY_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"API_URL":   os.Getenv("API_URL"),
		"REGION":    os.Getenv("REGION"),
		"SATELLITE": os.Getenv("SATELLITE"),
		"PRODUCT":   os.Getenv("PRODUCT"),
		"DOMAIN":    os.Getenv("DOMAIN"),
	}

	defer func() {
		for key, value := range originalVars {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	testVars := map[string]string{
		"API_URL":   "https://test-api.example.com",
		"REGION":    "eu-west-1",
		"SATELLITE": "18",
		"PRODUCT":   "ABI-L2-CMIP",
		"DOMAIN":    "F",
	}

	for key, value := range testVars {
		os.Setenv(key, value)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ApiURL != testVars["API_URL"] {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, testVars["API_URL"])
	}

	if config.Region != testVars["REGION"] {
		t.Errorf("config.Region = %s, want %s", config.Region, testVars["REGION"])
	}

	if config.Satellite != testVars["SATELLITE"] {
		t.Errorf("config.Satellite = %s, want %s", config.Satellite, testVars["SATELLITE"])
	}

	if config.Product != testVars["PRODUCT"] {
		t.Errorf("config.Product = %s, want %s", config.Product, testVars["PRODUCT"])
	}

	if config.Domain != testVars["DOMAIN"] {
		t.Errorf("config.Domain = %s, want %s", config.Domain, testVars["DOMAIN"])
	}

	for key := range testVars {
		os.Unsetenv(key)
	}

	config, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ApiURL != "" {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, "")
	}

	if config.Region != "us-east-1" {
		t.Errorf("config.Region = %s, want %s", config.Region, "us-east-1")
	}

	if config.Satellite != "16" {
		t.Errorf("config.Satellite = %s, want %s", config.Satellite, "16")
	}

	if config.Product != "ABI-L2-MCMIP" {
		t.Errorf("config.Product = %s, want %s", config.Product, "ABI-L2-MCMIP")
	}

	if config.Domain != "C" {
		t.Errorf("config.Domain = %s, want %s", config.Domain, "C")
	}
}
