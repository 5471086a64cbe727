package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/r21league/auctionpress/pkg/auctionpress/config"
)

func TestResolveInputPathListingMode(t *testing.T) {
	cfg := config.Config{AuctionMode: false, ListingPath: "/data/Player_List.xlsx"}
	path, err := ResolveInputPath(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != cfg.ListingPath {
		t.Errorf("expected fixed listing path, got %q", path)
	}
}

func TestResolveInputPathPicksLatestAuctionFile(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "AuctionResult_1.xlsx")
	newer := filepath.Join(dir, "AuctionResult_2.xlsx")
	for _, p := range []string{older, newer} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	// Unrelated files must not match.
	os.WriteFile(filepath.Join(dir, "Notes.xlsx"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "AuctionResult.txt"), []byte("x"), 0644)

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	path, err := ResolveInputPath(config.Config{AuctionMode: true, AuctionDir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != newer {
		t.Errorf("expected most recent match %q, got %q", newer, path)
	}
}

func TestResolveInputPathNoMatch(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "Other.xlsx"), []byte("x"), 0644)

	_, err := ResolveInputPath(config.Config{AuctionMode: true, AuctionDir: dir})
	if !errors.Is(err, ErrNoAuctionFile) {
		t.Errorf("expected ErrNoAuctionFile, got %v", err)
	}
}

func TestSheetByNameAbsent(t *testing.T) {
	wb := openTestWorkbook(t, []string{"Players"}, map[string][][]string{
		"Players": {{"Name"}},
	})

	if _, ok := wb.SheetByName("Missing"); ok {
		t.Error("absent sheet should report ok=false")
	}
	if _, ok := wb.SheetByName("Players"); !ok {
		t.Error("present sheet should report ok=true")
	}
}
