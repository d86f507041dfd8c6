package goesfile

import (
	"errors"
	"testing"
)

func TestNormalizeSatellite(t *testing.T) {
	tests := []struct {
		alias string
		want  int
	}{
		{"16", 16},
		{"G16", 16},
		{"g16", 16},
		{"GOES16", 16},
		{"GOES-16", 16},
		{"goes-east", 16},
		{"EAST", 16},
		{"17", 17},
		{"G17", 17},
		{"GOES17", 17},
		{"GOES-17", 17},
		{"18", 18},
		{"G18", 18},
		{"GOES18", 18},
		{"GOES-18", 18},
		{"GOES-WEST", 18},
		{"west", 18},
		{" 16 ", 16},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := NormalizeSatellite(tt.alias)
			if err != nil {
				t.Fatalf("NormalizeSatellite(%s) error = %v", tt.alias, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeSatellite(%s) = %d, want %d", tt.alias, got, tt.want)
			}
		})
	}
}

func TestNormalizeSatelliteUnknown(t *testing.T) {
	for _, alias := range []string{"", "19", "GOES-19", "himawari", "G1 6"} {
		_, err := NormalizeSatellite(alias)
		if err == nil {
			t.Errorf("NormalizeSatellite(%s) expected error, got nil", alias)
			continue
		}
		if !errors.Is(err, ErrUnknownSatellite) {
			t.Errorf("NormalizeSatellite(%s) error = %v, want ErrUnknownSatellite", alias, err)
		}
	}
}

func TestBucketAndPlatform(t *testing.T) {
	tests := []struct {
		number   int
		bucket   string
		platform string
	}{
		{16, "noaa-goes16", "G16"},
		{17, "noaa-goes17", "G17"},
		{18, "noaa-goes18", "G18"},
	}

	for _, tt := range tests {
		if got := Bucket(tt.number); got != tt.bucket {
			t.Errorf("Bucket(%d) = %s, want %s", tt.number, got, tt.bucket)
		}
		if got := Platform(tt.number); got != tt.platform {
			t.Errorf("Platform(%d) = %s, want %s", tt.number, got, tt.platform)
		}
	}
}
