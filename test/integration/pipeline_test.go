package integration

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"govtable/internal/config"
	"govtable/internal/csvio"
	"govtable/internal/differ"
	"govtable/internal/history"
	"govtable/internal/logger"
	"govtable/internal/models"
	"govtable/internal/normalizer"
	"govtable/internal/renderer"
)

func testLogger() *logger.Logger {
	return logger.NewWriterLogger(io.Discard, "error")
}

func writeCSVWithBOM(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(content)...)

	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write CSV fixture: %v", err)
	}

	return path
}

func runDataset(schema models.Schema, csvPath string, prior map[string]struct{}, log *logger.Logger) (models.Dataset, []string) {
	header, rows := csvio.ReadFile(csvPath, log)

	ds := normalizer.Normalize(schema, header, rows)
	normalizer.ParseTimes(&ds)

	return differ.Apply(ds, prior)
}

func TestPipeline_TwoRuns(t *testing.T) {
	dir := t.TempDir()
	log := testLogger()
	cfg := config.Default()

	csvPath := writeCSVWithBOM(t, dir, "notice.csv",
		"标题,采购级别,采购品类,发布时间,详情链接\n"+
			"公告A,市级,信息化,2025-08-20 10:30:00,https://example.gov.cn/1\n"+
			"公告A,市级,家具,2025-08-20 10:30:00,https://example.gov.cn/1\n"+
			"公告B,区级,,2025-08-21,无数据\n")

	schema := cfg.Datasets.Notice.Schema("notice", "采购公告")
	store := history.NewStore(filepath.Join(dir, "history_data.json"), log)

	// Run 1: empty history, everything is new, duplicate dropped.
	hist := store.Load()

	ds, keys := runDataset(schema, csvPath, hist.NoticeSet(), log)

	if len(ds.Records) != 2 {
		t.Fatalf("run 1: expected 2 records after dedup, got %d", len(ds.Records))
	}

	for i := range ds.Records {
		if !ds.Records[i].IsNew {
			t.Errorf("run 1: row %d should be new", i)
		}
	}

	// Category sentinel applied during normalization.
	if got := ds.Cell(1, "采购品类"); got != models.Uncategorized {
		t.Errorf("run 1: 采购品类 = %s, want %s", got, models.Uncategorized)
	}

	var page bytes.Buffer
	if err := renderer.Render(&page, cfg.Output.Title, []models.Dataset{ds}, time.Now()); err != nil {
		t.Fatalf("run 1: render failed: %v", err)
	}

	if !strings.Contains(page.String(), "class=\"new-row\"") {
		t.Error("run 1: rendered page should highlight new rows")
	}

	store.Save(keys, nil)

	// Run 2: same CSV, nothing is new anymore.
	hist = store.Load()

	if len(hist.PurchaseNotice) != 2 {
		t.Fatalf("run 2: history has %d keys, want 2", len(hist.PurchaseNotice))
	}

	ds, _ = runDataset(schema, csvPath, hist.NoticeSet(), log)

	for i := range ds.Records {
		if ds.Records[i].IsNew {
			t.Errorf("run 2: row %d should not be new", i)
		}
	}

	page.Reset()
	if err := renderer.Render(&page, cfg.Output.Title, []models.Dataset{ds}, time.Now()); err != nil {
		t.Fatalf("run 2: render failed: %v", err)
	}

	if strings.Contains(page.String(), "[新增]") {
		t.Error("run 2: no row should carry the new marker")
	}
}

func TestPipeline_MissingCSVDegradesToEmptyPage(t *testing.T) {
	dir := t.TempDir()
	log := testLogger()
	cfg := config.Default()

	schema := cfg.Datasets.Intention.Schema("intention", "采购意向公告")

	ds, keys := runDataset(schema, filepath.Join(dir, "nope.csv"), nil, log)

	if !ds.Empty() {
		t.Fatalf("expected empty dataset for missing CSV, got %d records", len(ds.Records))
	}

	if len(keys) != 0 {
		t.Errorf("expected no keys, got %v", keys)
	}

	var page bytes.Buffer
	if err := renderer.Render(&page, cfg.Output.Title, []models.Dataset{ds}, time.Now()); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(page.String(), "暂无数据") {
		t.Error("empty dataset should render the placeholder page section")
	}
}
