package history

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"govtable/internal/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history_data.json")

	return NewStore(path, logger.NewWriterLogger(io.Discard, "error"))
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	notice := []string{"公告A", "公告B"}
	intention := []string{"意向X"}

	store.Save(notice, intention)

	h := store.Load()

	if len(h.PurchaseNotice) != 2 || h.PurchaseNotice[0] != "公告A" || h.PurchaseNotice[1] != "公告B" {
		t.Errorf("PurchaseNotice = %v, want %v", h.PurchaseNotice, notice)
	}

	if len(h.PurchaseIntention) != 1 || h.PurchaseIntention[0] != "意向X" {
		t.Errorf("PurchaseIntention = %v, want %v", h.PurchaseIntention, intention)
	}

	if h.LastUpdated == "" {
		t.Error("LastUpdated should be set after save")
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	h := store.Load()

	if h.PurchaseNotice == nil || len(h.PurchaseNotice) != 0 {
		t.Errorf("PurchaseNotice = %v, want empty non-nil list", h.PurchaseNotice)
	}

	if h.PurchaseIntention == nil || len(h.PurchaseIntention) != 0 {
		t.Errorf("PurchaseIntention = %v, want empty non-nil list", h.PurchaseIntention)
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	h := store.Load()

	if len(h.PurchaseNotice) != 0 || len(h.PurchaseIntention) != 0 {
		t.Errorf("corrupt history should load as empty, got %v / %v", h.PurchaseNotice, h.PurchaseIntention)
	}
}

func TestStore_SaveReplacesWholesale(t *testing.T) {
	store := newTestStore(t)

	store.Save([]string{"老公告1", "老公告2"}, []string{"老意向"})
	store.Save([]string{"新公告"}, nil)

	h := store.Load()

	// No merge: the second save fully replaces the first.
	if len(h.PurchaseNotice) != 1 || h.PurchaseNotice[0] != "新公告" {
		t.Errorf("PurchaseNotice = %v, want [新公告]", h.PurchaseNotice)
	}

	if len(h.PurchaseIntention) != 0 {
		t.Errorf("PurchaseIntention = %v, want empty", h.PurchaseIntention)
	}
}

func TestStore_SaveNilKeysWritesEmptyLists(t *testing.T) {
	store := newTestStore(t)

	store.Save(nil, nil)

	data, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("history file not written: %v", err)
	}

	// null lists would break consumers of the JSON file.
	if !strings.Contains(string(data), `"purchase_notice": []`) ||
		!strings.Contains(string(data), `"purchase_intention": []`) {
		t.Errorf("expected empty JSON arrays, got %s", data)
	}
}

func TestHistorySets(t *testing.T) {
	store := newTestStore(t)

	store.Save([]string{"公告A"}, []string{"意向X"})

	h := store.Load()

	if _, ok := h.NoticeSet()["公告A"]; !ok {
		t.Error("NoticeSet should contain 公告A")
	}

	if _, ok := h.IntentionSet()["公告A"]; ok {
		t.Error("IntentionSet should not contain 公告A")
	}
}
