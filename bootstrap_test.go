package handranks

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestPersistAndMmapRowsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.dat")
	want := []uint32{1, 2, 3, 4096, 0xffffffff, 0}
	if err := persistRows(path, want); err != nil {
		t.Fatalf("persistRows: %v", err)
	}
	got, err := mmapRows(path, len(want))
	if err != nil {
		t.Fatalf("mmapRows: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("mmapRows: got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMmapRowsRejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.dat")
	if err := persistRows(path, []uint32{1, 2, 3}); err != nil {
		t.Fatalf("persistRows: %v", err)
	}
	if _, err := mmapRows(path, 4); err == nil {
		t.Error("mmapRows with a mismatched count: expected error, got nil")
	}
}

func TestLoadOrBuildBuildsOnceThenReuses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.dat")
	calls := 0
	build := func() *Table {
		calls++
		return &Table{rows: []uint32{7, 8, 9}}
	}
	if _, err := loadOrBuild(zerolog.Nop(), path, 3, build); err != nil {
		t.Fatalf("loadOrBuild (build path): %v", err)
	}
	if calls != 1 {
		t.Fatalf("build called %d times, want 1", calls)
	}
	if _, err := loadOrBuild(zerolog.Nop(), path, 3, build); err != nil {
		t.Fatalf("loadOrBuild (mmap path): %v", err)
	}
	if calls != 1 {
		t.Errorf("build called %d times after the file already existed, want still 1", calls)
	}
}
