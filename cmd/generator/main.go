// Package main provides the gov-purchase-table generator: it reads the
// two procurement CSV sources, diffs them against the previous run and
// writes one self-contained interactive HTML page.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"govtable/internal/config"
	"govtable/internal/csvio"
	"govtable/internal/differ"
	"govtable/internal/history"
	"govtable/internal/logger"
	"govtable/internal/models"
	"govtable/internal/normalizer"
	"govtable/internal/renderer"
	"govtable/internal/report"
)

// configPath is the optional configuration override; the binary takes
// no arguments and falls back to the built-in defaults.
const configPath = "config.yaml"

func main() {
	cfg := loadConfig()
	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting gov-purchase-table generation")
	log.Info(fmt.Sprintf("📍 采购公告CSV: %s", cfg.Datasets.Notice.CSVPath))
	log.Info(fmt.Sprintf("📍 采购意向公告CSV: %s", cfg.Datasets.Intention.CSVPath))

	startTime := time.Now()

	// 1. Load history
	store := history.NewStore(cfg.History.Path, log)
	hist := store.Load()

	// 2. Ingest, normalize and diff both datasets
	notice, noticeKeys := processDataset(
		cfg.Datasets.Notice.Schema("notice", "采购公告"),
		cfg.Datasets.Notice.CSVPath,
		hist.NoticeSet(),
		log,
	)

	intention, intentionKeys := processDataset(
		cfg.Datasets.Intention.Schema("intention", "采购意向公告"),
		cfg.Datasets.Intention.CSVPath,
		hist.IntentionSet(),
		log,
	)

	// 3. Render the page; history is refreshed only after a successful
	// write, so a failed run keeps the previous new-row markers.
	generatedAt := time.Now()

	if writeOutput(cfg.Output, []models.Dataset{notice.Dataset, intention.Dataset}, generatedAt, log) {
		store.Save(noticeKeys, intentionKeys)
		log.Info(fmt.Sprintf("✅ HTML表格已生成: %s", cfg.Output.HTMLPath))
	}

	// 4. Summary report
	fmt.Println()
	fmt.Print(report.Table([]report.DatasetSummary{notice.Summary, intention.Summary}))
	fmt.Printf("耗时: %v\n", time.Since(startTime).Round(time.Millisecond))
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg
	}

	if !errors.Is(err, os.ErrNotExist) {
		// A broken override file should be visible, but the run
		// continues on defaults.
		fmt.Fprintf(os.Stderr, "⚠️  ignoring %s: %v\n", configPath, err)
	}

	return config.Default()
}

// processed bundles a diffed dataset with its report counters.
type processed struct {
	Dataset models.Dataset
	Summary report.DatasetSummary
}

func processDataset(schema models.Schema, csvPath string, priorKeys map[string]struct{}, log *logger.Logger) (processed, []string) {
	header, rows := csvio.ReadFile(csvPath, log)

	ds := normalizer.Normalize(schema, header, rows)
	normalizer.ParseTimes(&ds)

	ds, keys := differ.Apply(ds, priorKeys)

	newCount := 0

	for i := range ds.Records {
		if ds.Records[i].IsNew {
			newCount++
		}
	}

	log.Info("dataset processed",
		"table", schema.ID,
		"rows", len(ds.Records),
		"new", newCount,
		"duplicates", len(rows)-len(ds.Records),
	)

	return processed{
		Dataset: ds,
		Summary: report.DatasetSummary{
			Name:       schema.Heading,
			Rows:       len(ds.Records),
			New:        newCount,
			Duplicates: len(rows) - len(ds.Records),
		},
	}, keys
}

// writeOutput renders the page to the configured path. A write failure
// is the one user-visible terminal failure; it is logged and the
// process still exits normally.
func writeOutput(out config.OutputConfig, datasets []models.Dataset, generatedAt time.Time, log *logger.Logger) bool {
	f, err := os.Create(out.HTMLPath)
	if err != nil {
		log.Error("❌ failed to create output file", "path", out.HTMLPath, "error", err)

		return false
	}

	renderErr := renderer.Render(f, out.Title, datasets, generatedAt)
	closeErr := f.Close()

	if renderErr != nil {
		log.Error("❌ failed to render page", "path", out.HTMLPath, "error", renderErr)

		return false
	}

	if closeErr != nil {
		log.Error("❌ failed to write output file", "path", out.HTMLPath, "error", closeErr)

		return false
	}

	return true
}
