//nolint:tagliatelle
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/farcloser/primordium/fault"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/farcloser/phare/internal/types"
)

// ErrUnreadable is the only error surfaced for a batch of reports: a file could not be read or is not JSON.
var ErrUnreadable = errors.New("files unreadable or invalid JSON")

const jsonExt = ".json"

// document is the subset of the Lighthouse result schema we care about.
// Sections are kept raw so that a mis-shaped entry degrades to a missing value instead of failing the file.
type document struct {
	Categories        map[string]json.RawMessage `json:"categories"`
	Audits            map[string]json.RawMessage `json:"audits"`
	FinalURL          string                     `json:"finalUrl"`
	FinalDisplayedURL string                     `json:"finalDisplayedUrl"`
	RequestedURL      string                     `json:"requestedUrl"`
	FetchTime         string                     `json:"fetchTime"`
	LighthouseVersion string                     `json:"lighthouseVersion"`
	ConfigSettings    struct {
		FormFactor string `json:"formFactor"`
	} `json:"configSettings"`
}

type entry struct {
	Title        json.RawMessage `json:"title"`
	Score        json.RawMessage `json:"score"`
	NumericValue json.RawMessage `json:"numericValue"`
}

// Parse decodes one report. Only syntactically invalid JSON is an error.
func Parse(path string, data []byte) (*types.Report, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %w: %s", ErrUnreadable, fault.ErrInvalidJSON, path)
	}

	var doc document

	// Type mismatches leave the offending field zeroed and decoding carries on.
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %w: %s: %w", ErrUnreadable, fault.ErrInvalidJSON, path, err)
		}
	}

	report := &types.Report{
		Name:              filepath.Base(path),
		Path:              path,
		Categories:        make(map[string]types.Category, len(doc.Categories)),
		Audits:            make(map[string]types.Audit, len(doc.Audits)),
		FinalURL:          firstNonEmpty(doc.FinalDisplayedURL, doc.FinalURL, doc.RequestedURL),
		FetchTime:         doc.FetchTime,
		LighthouseVersion: doc.LighthouseVersion,
		FormFactor:        doc.ConfigSettings.FormFactor,
	}

	for key, raw := range doc.Categories {
		ent := decodeEntry(raw)
		report.Categories[key] = types.Category{Title: text(ent.Title), Score: number(ent.Score)}
	}

	for key, raw := range doc.Audits {
		ent := decodeEntry(raw)
		report.Audits[key] = types.Audit{Title: text(ent.Title), NumericValue: number(ent.NumericValue)}
	}

	return report, nil
}

// ReadFile reads and parses a single report from disk.
func ReadFile(path string) (*types.Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrUnreadable, fault.ErrReadFailure, err)
	}

	return Parse(path, data)
}

// ParseFiles reads every path with at most workers concurrent reads, then orders the reports by file name.
// Any failure discards the whole batch.
func ParseFiles(ctx context.Context, paths []string, workers int) ([]*types.Report, error) {
	reports := make([]*types.Report, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))

	for idx, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report, err := ReadFile(path)
			if err != nil {
				return err
			}

			reports[idx] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	SortByName(reports)

	return reports, nil
}

// SortByName orders reports by file name with a numeric-aware collation, so run-2 comes before run-10.
// Paths break ties between identical names.
func SortByName(reports []*types.Report) {
	collator := collate.New(language.Und, collate.Numeric)

	slices.SortStableFunc(reports, func(a, b *types.Report) int {
		if cmp := collator.CompareString(a.Name, b.Name); cmp != 0 {
			return cmp
		}

		return strings.Compare(a.Path, b.Path)
	})
}

type fileKey struct {
	name    string
	size    int64
	modTime time.Time
}

// Collect expands directories into the JSON files they contain, recursively.
// Explicit file arguments are kept whatever their extension.
// Entries with the same name, size and modification time are only kept once.
func Collect(paths []string) ([]string, error) {
	var (
		files []string
		seen  = map[fileKey]struct{}{}
	)

	add := func(path string, info fs.FileInfo) {
		key := fileKey{name: info.Name(), size: info.Size(), modTime: info.ModTime()}
		if _, ok := seen[key]; ok {
			return
		}

		seen[key] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrUnreadable, fault.ErrReadFailure, err)
		}

		if !info.IsDir() {
			add(root, info)

			continue
		}

		err = filepath.WalkDir(root, func(path string, dirEntry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if dirEntry.IsDir() || !strings.EqualFold(filepath.Ext(path), jsonExt) {
				return nil
			}

			fileInfo, err := dirEntry.Info()
			if err != nil {
				return err
			}

			add(path, fileInfo)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrUnreadable, fault.ErrReadFailure, err)
		}
	}

	return files, nil
}

func decodeEntry(raw json.RawMessage) entry {
	var ent entry

	// A non-object entry simply yields no fields.
	_ = json.Unmarshal(raw, &ent)

	return ent
}

func number(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	num, ok := value.(float64)
	if !ok {
		return nil
	}

	return &num
}

func text(raw json.RawMessage) string {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}

	return value
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
