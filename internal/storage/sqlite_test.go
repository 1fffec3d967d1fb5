package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.turtleshell/visits.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".turtleshell", "visits.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestStoreLastVisited(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LastVisited("alice"); err != nil || ok {
		t.Fatalf("LastVisited on empty store = %v, %v", ok, err)
	}

	for _, h := range []int{0, 3, 4, 12} {
		if _, err := store.RecordVisit("alice", h); err != nil {
			t.Fatalf("RecordVisit() failed: %v", err)
		}
	}
	if _, err := store.RecordVisit("bob", 7); err != nil {
		t.Fatalf("RecordVisit() failed: %v", err)
	}

	h, ok, err := store.LastVisited("alice")
	if err != nil || !ok || h != 12 {
		t.Errorf("LastVisited(alice) = %d, %v, %v; expected 12", h, ok, err)
	}
	h, ok, err = store.LastVisited("bob")
	if err != nil || !ok || h != 7 {
		t.Errorf("LastVisited(bob) = %d, %v, %v; expected 7", h, ok, err)
	}
}

func TestStoreVisitCountAndRecent(t *testing.T) {
	store := openTestStore(t)

	for h := 1; h <= 5; h++ {
		if _, err := store.RecordVisit("carol", h); err != nil {
			t.Fatal(err)
		}
	}

	n, err := store.VisitCount("carol")
	if err != nil || n != 5 {
		t.Errorf("VisitCount = %d, %v; expected 5", n, err)
	}

	recent, err := store.RecentVisits("carol", 3)
	if err != nil {
		t.Fatalf("RecentVisits() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 visits, got %d", len(recent))
	}
	if recent[0].Heuristic != 5 || recent[2].Heuristic != 3 {
		t.Errorf("recent visits not newest first: %+v", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreTopHeuristics(t *testing.T) {
	store := openTestStore(t)

	visits := []struct {
		viewer    string
		heuristic int
	}{
		{"a", 2}, {"b", 2}, {"a", 2},
		{"a", 9}, {"b", 9},
		{"c", 1},
		{"c", 4},
	}
	for _, v := range visits {
		if _, err := store.RecordVisit(v.viewer, v.heuristic); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.TopHeuristics(3)
	if err != nil {
		t.Fatalf("TopHeuristics() failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 stats, got %d", len(stats))
	}

	if stats[0].Heuristic != 2 || stats[0].Visits != 3 || stats[0].Viewers != 2 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Heuristic != 9 || stats[1].Visits != 2 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
	// Tie between 1 and 4 resolves by index.
	if stats[2].Heuristic != 1 {
		t.Errorf("stats[2] = %+v, expected heuristic 1", stats[2])
	}
}

func TestStoreClearViewer(t *testing.T) {
	store := openTestStore(t)

	store.RecordVisit("dave", 1)
	store.RecordVisit("erin", 2)

	if err := store.ClearViewer("dave"); err != nil {
		t.Fatalf("ClearViewer() failed: %v", err)
	}
	if n, _ := store.VisitCount("dave"); n != 0 {
		t.Errorf("dave should have no visits, got %d", n)
	}
	if n, _ := store.VisitCount("erin"); n != 1 {
		t.Errorf("erin should keep her visit, got %d", n)
	}
}
