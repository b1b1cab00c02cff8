package storage

import (
	"path/filepath"
	"testing"

	"github.com/rendis/triptap/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "trip.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestImportBatchRoundTrip(t *testing.T) {
	store := openTestStore(t)

	dests := []model.Destination{
		{Name: "Taj Mahal", City: "Agra", Zone: "North", Type: "Monument", Fee: 50, Rating: 4.6, BestTime: "Morning", DSLR: "Yes"},
		{Name: "Agra Fort", City: "Agra", Zone: "North", Type: "Fort", Fee: 40, Rating: 4.5, BestTime: "Evening", DSLR: "No"},
		{Name: "Red Fort", City: "Delhi", Zone: "North", Type: "Fort", Fee: 35, Rating: 4.4, BestTime: "Evening", DSLR: "Yes"},
	}

	inserted, err := store.ImportBatch(dests)
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if inserted != len(dests) {
		t.Fatalf("inserted = %d, want %d", inserted, len(dests))
	}

	got, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != len(dests) {
		t.Fatalf("loaded %d destinations, want %d", len(got), len(dests))
	}
	for i, want := range dests {
		if got[i] != want {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want)
		}
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != len(dests) {
		t.Errorf("Count = %d, want %d", count, len(dests))
	}
}

func TestImportBatchSkipsRejectedRows(t *testing.T) {
	store := openTestStore(t)

	// The fee CHECK constraint rejects the middle row; the rest still commit.
	dests := []model.Destination{
		{Name: "Marina Beach", City: "Chennai", Fee: 0},
		{Name: "Broken Row", City: "Chennai", Fee: -5},
		{Name: "Fort St George", City: "Chennai", Fee: 15},
	}

	inserted, err := store.ImportBatch(dests)
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("inserted = %d, want 2", inserted)
	}

	got, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d destinations, want 2", len(got))
	}
	if got[0].Name != "Marina Beach" || got[1].Name != "Fort St George" {
		t.Errorf("surviving rows out of order: %q, %q", got[0].Name, got[1].Name)
	}
}
