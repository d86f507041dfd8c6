// Package inventory discovers GOES data files by listing the hourly
// partitions of a product and matching parsed file metadata against a
// requested time window.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"goesfind/internal/goesfile"
)

var ErrNoFiles = errors.New("no files found")

// Lister is the object listing side of the S3 client. Kept as an interface
// so the service can be exercised against canned listings in tests.
type Lister interface {
	ListObjects(ctx context.Context, bucket, prefix string, refresh bool) ([]string, error)
}

type Service struct {
	lister Lister
	logger *slog.Logger
}

func New(lister Lister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{lister: lister, logger: logger}
}

type SearchInput struct {
	Bucket  string
	Product string
	Start   time.Time
	End     time.Time
	Bands   []int
	Refresh bool
}

type FindInput struct {
	Satellite string
	Product   string
	Domain    string
	Bands     []int
	At        time.Time
}

// Search lists every hourly partition between Start and End (inclusive,
// hour-aligned), parses the object keys and keeps the records whose
// acquisition window falls inside [Start, End]. Boundary timestamps count as
// inside. Returns ErrNoFiles when nothing satisfies the window.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]goesfile.FileRecord, error) {
	start := in.Start.UTC()
	end := in.End.UTC()

	var keys []string
	for _, prefix := range hourlyPrefixes(in.Product, start, end) {
		page, err := s.lister.ListObjects(ctx, in.Bucket, prefix, in.Refresh)
		if err != nil {
			return nil, fmt.Errorf("failed to list partition %s: %w", prefix, err)
		}
		keys = append(keys, page...)
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w for bucket %s, product %s between %s and %s",
			ErrNoFiles, in.Bucket, in.Product, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	records := make([]goesfile.FileRecord, 0, len(keys))
	for _, key := range keys {
		record, err := goesfile.ParseKey(key)
		if err != nil {
			s.logger.Warn("skipping object with unexpected file name", "key", key, "error", err)
			continue
		}

		if strings.HasPrefix(in.Product, "ABI") && len(in.Bands) > 0 {
			if record.Band == nil || !slices.Contains(in.Bands, *record.Band) {
				continue
			}
		}

		if record.Start.Before(start) || record.End.After(end) {
			continue
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w in window %s to %s for bucket %s, product %s",
			ErrNoFiles, start.Format(time.RFC3339), end.Format(time.RFC3339), in.Bucket, in.Product)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Start.Before(records[j].Start)
	})

	return records, nil
}

// FindNearest resolves the satellite alias, searches a one hour window either
// side of the requested time and returns the record(s) whose start time is
// closest to it. Multi-band requests return one record per band sharing the
// nearest start time. A nil, nil return means nothing matched after
// filtering, which is reported as a notice rather than an error.
func (s *Service) FindNearest(ctx context.Context, in FindInput) ([]goesfile.FileRecord, error) {
	number, err := goesfile.NormalizeSatellite(in.Satellite)
	if err != nil {
		return nil, err
	}

	at := in.At
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC()

	mesoscale := in.Domain == "M1" || in.Domain == "M2"

	// Mesoscale files share the M product prefix; the sub-domain is only
	// visible in the file names themselves.
	productDomain := in.Product + in.Domain
	if mesoscale {
		productDomain = in.Product + "M"
	}

	records, err := s.Search(ctx, SearchInput{
		Bucket:  goesfile.Bucket(number),
		Product: productDomain,
		Start:   at.Add(-time.Hour),
		End:     at.Add(time.Hour),
		Bands:   in.Bands,
		Refresh: true,
	})
	if err != nil {
		return nil, err
	}

	if mesoscale {
		kept := records[:0]
		for _, record := range records {
			if strings.Contains(record.ProductMode, in.Product+in.Domain) {
				kept = append(kept, record)
			}
		}
		records = kept
	}

	if len(records) == 0 {
		s.logger.Info("no data matched the request",
			"satellite", in.Satellite, "product", in.Product, "domain", in.Domain, "time", at)
		return nil, nil
	}

	nearest := nearestStart(records, at)

	var matched []goesfile.FileRecord
	for _, record := range records {
		if record.Start.Equal(nearest) {
			record.Product = in.Product
			record.Domain = in.Domain
			matched = append(matched, record)
		}
	}

	return matched, nil
}

// nearestStart picks the start time closest to the target. On an exact tie
// the later time wins.
func nearestStart(records []goesfile.FileRecord, at time.Time) time.Time {
	best := records[0].Start
	bestDistance := absDuration(at.Sub(best))

	for _, record := range records[1:] {
		distance := absDuration(at.Sub(record.Start))
		if distance < bestDistance || (distance == bestDistance && record.Start.After(best)) {
			best = record.Start
			bestDistance = distance
		}
	}

	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// hourlyPrefixes enumerates the partition prefixes product/YYYY/JJJ/HH/ for
// every hour between start and end inclusive.
func hourlyPrefixes(product string, start, end time.Time) []string {
	var prefixes []string

	for t := start.Truncate(time.Hour); !t.After(end.Truncate(time.Hour)); t = t.Add(time.Hour) {
		prefixes = append(prefixes, fmt.Sprintf("%s/%04d/%03d/%02d/", product, t.Year(), t.YearDay(), t.Hour()))
	}

	return prefixes
}
