// Package ingest locates, opens and normalizes the auction workbook.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/r21league/auctionpress/pkg/auctionpress/config"
)

// ErrNoAuctionFile indicates no AuctionResult workbook was found in the
// configured folder. The tick aborts; the next tick retries discovery.
var ErrNoAuctionFile = errors.New("no AuctionResult*.xlsx file found")

const (
	auctionFilePrefix = "AuctionResult"
	auctionFileExt    = ".xlsx"
)

// ResolveInputPath selects the workbook for this tick. In auction mode the
// configured folder is scanned for AuctionResult*.xlsx and the most recently
// modified match wins; in listing mode the fixed configured path is returned.
func ResolveInputPath(cfg config.Config) (string, error) {
	if !cfg.AuctionMode {
		return cfg.ListingPath, nil
	}

	entries, err := os.ReadDir(cfg.AuctionDir)
	if err != nil {
		return "", fmt.Errorf("scan auction folder %s: %w", cfg.AuctionDir, err)
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var matches []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, auctionFilePrefix) || !strings.HasSuffix(name, auctionFileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		matches = append(matches, candidate{
			path:    filepath.Join(cfg.AuctionDir, name),
			modTime: info.ModTime().UnixNano(),
		})
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoAuctionFile, cfg.AuctionDir)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].modTime > matches[j].modTime
	})
	return matches[0].path, nil
}

// Workbook wraps an open xlsx file with sheet access by index and by name.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook opens the workbook at path. The caller owns the handle for the
// duration of one ingestion pass and must Close it on all exit paths.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetAt returns the rows of the sheet at the given index, formatted as
// display text. ok is false when no such sheet exists.
func (w *Workbook) SheetAt(index int) (rows [][]string, ok bool) {
	name := w.f.GetSheetName(index)
	if name == "" {
		return nil, false
	}
	return w.sheetRows(name)
}

// SheetByName returns the rows of the named sheet (exact match). An absent
// sheet yields ok=false, never an error.
func (w *Workbook) SheetByName(name string) (rows [][]string, ok bool) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, false
	}
	return w.sheetRows(name)
}

func (w *Workbook) sheetRows(name string) ([][]string, bool) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, false
	}
	return rows, true
}
