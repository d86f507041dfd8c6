package goesfile

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSatellite = errors.New("satellite name not recognized")

var satelliteAliases = map[string]int{
	"16": 16, "G16": 16, "GOES16": 16, "GOES-16": 16, "GOES-EAST": 16, "EAST": 16,
	"17": 17, "G17": 17, "GOES17": 17, "GOES-17": 17,
	"18": 18, "G18": 18, "GOES18": 18, "GOES-18": 18, "GOES-WEST": 18, "WEST": 18,
}

// NormalizeSatellite resolves any recognized GOES satellite alias to its
// canonical number (16, 17 or 18).
func NormalizeSatellite(alias string) (int, error) {
	number, ok := satelliteAliases[strings.ToUpper(strings.TrimSpace(alias))]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSatellite, alias)
	}
	return number, nil
}

// Bucket returns the NOAA public bucket holding data for a satellite number.
func Bucket(number int) string {
	return fmt.Sprintf("noaa-goes%d", number)
}

// Platform returns the platform identifier used inside file names.
func Platform(number int) string {
	return fmt.Sprintf("G%d", number)
}
