// Package goesfile extracts metadata from the strict GOES-R object key
// conventions used in the NOAA public buckets, e.g.
// ABI-L2-MCMIPC/2019/172/18/OR_ABI-L2-MCMIPC-M6_G16_s20191721801547_e20191721804320_c20191721804433.nc
package goesfile

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

type FileRecord struct {
	Key         string    `json:"file"`
	Satellite   string    `json:"satellite"`
	Product     string    `json:"product"`
	ProductMode string    `json:"product_mode"`
	Mode        int       `json:"mode,omitempty"`
	Band        *int      `json:"band,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Creation    time.Time `json:"creation"`
	Domain      string    `json:"domain,omitempty"`
}

// ParseKey decodes an object key into a FileRecord. The file name is
// <prefix>_<product_mode>_<platform>_s<start>_e<end>_c<creation>.<ext>
// where the timestamps use the GOES Julian-day encoding YYYYJJJHHMMSSt
// (t = tenths of a second).
func ParseKey(key string) (FileRecord, error) {
	result := FileRecord{Key: key}

	base := path.Base(key)
	ext := path.Ext(base)
	name := strings.TrimSuffix(base, ext)

	parts := strings.Split(name, "_")
	if len(parts) < 6 {
		return result, fmt.Errorf("file name has %d fields, want at least 6: %s", len(parts), base)
	}

	// Everything before the last 5 fields is the system/environment prefix
	productMode := parts[len(parts)-5]
	platform := parts[len(parts)-4]

	start, err := parseTimestamp(parts[len(parts)-3], 's')
	if err != nil {
		return result, fmt.Errorf("bad start time in %s: %w", base, err)
	}
	end, err := parseTimestamp(parts[len(parts)-2], 'e')
	if err != nil {
		return result, fmt.Errorf("bad end time in %s: %w", base, err)
	}
	creation, err := parseTimestamp(parts[len(parts)-1], 'c')
	if err != nil {
		return result, fmt.Errorf("bad creation time in %s: %w", base, err)
	}

	result.Satellite = platform
	result.ProductMode = productMode
	result.Start = start
	result.End = end
	result.Creation = creation

	if strings.HasPrefix(productMode, "ABI") {
		if err := parseABIProductMode(productMode, &result); err != nil {
			return result, fmt.Errorf("bad product mode in %s: %w", base, err)
		}
	} else {
		result.Product = productMode
	}

	return result, nil
}

// parseABIProductMode splits e.g. ABI-L2-MCMIPC-M6C02 into product
// ABI-L2-MCMIPC, mode 6 and band 2. The channel part is absent for
// multispectral products.
func parseABIProductMode(productMode string, record *FileRecord) error {
	dash := strings.LastIndex(productMode, "-")
	if dash <= 0 || dash == len(productMode)-1 {
		return fmt.Errorf("no mode field in %s", productMode)
	}

	record.Product = productMode[:dash]
	modeBand := productMode[dash+1:]

	if modeBand[0] != 'M' {
		return fmt.Errorf("mode field %s does not start with M", modeBand)
	}

	modeStr := modeBand[1:]
	if c := strings.Index(modeBand, "C"); c > 0 {
		modeStr = modeBand[1:c]

		band, err := strconv.Atoi(modeBand[c+1:])
		if err != nil {
			return fmt.Errorf("bad band in %s", modeBand)
		}
		record.Band = &band
	}

	mode, err := strconv.Atoi(modeStr)
	if err != nil {
		return fmt.Errorf("bad mode in %s", modeBand)
	}
	record.Mode = mode

	return nil
}

// parseTimestamp decodes a field like s20191721801547: a marker letter
// followed by year(4), day-of-year(3), hour(2), minute(2), second(2) and
// tenths of a second(1), all UTC.
func parseTimestamp(field string, marker byte) (time.Time, error) {
	if len(field) != 15 {
		return time.Time{}, fmt.Errorf("timestamp %s has length %d, want 15", field, len(field))
	}
	if field[0] != marker {
		return time.Time{}, fmt.Errorf("timestamp %s does not start with %c", field, marker)
	}

	digits := field[1:]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return time.Time{}, fmt.Errorf("timestamp %s contains non-digit characters", field)
		}
	}

	year, _ := strconv.Atoi(digits[0:4])
	doy, _ := strconv.Atoi(digits[4:7])
	hour, _ := strconv.Atoi(digits[7:9])
	minute, _ := strconv.Atoi(digits[9:11])
	second, _ := strconv.Atoi(digits[11:13])
	tenth, _ := strconv.Atoi(digits[13:14])

	if doy < 1 || doy > 366 {
		return time.Time{}, fmt.Errorf("timestamp %s has day-of-year %d", field, doy)
	}
	if hour > 23 || minute > 59 || second > 60 {
		return time.Time{}, fmt.Errorf("timestamp %s is out of range", field)
	}

	t := time.Date(year, time.January, 1, hour, minute, second, tenth*int(100*time.Millisecond), time.UTC)
	return t.AddDate(0, 0, doy-1), nil
}
