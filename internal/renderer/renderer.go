// Package renderer serializes processed datasets into one self-contained
// interactive HTML page. All filtering and sorting happens client-side;
// once written, the file is fully static with no external references.
package renderer

import (
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"govtable/internal/models"
	"govtable/pkg/utils"
)

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// chineseNumerals number the table sections the way the page headings
// expect (一、二、...).
var chineseNumerals = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}

type pageView struct {
	Title       string
	GeneratedAt string
	Tables      []tableView
	CSS         template.CSS
	Script      template.JS
	Config      template.JS
}

type tableView struct {
	ID        string
	Numeral   string
	Heading   string
	Empty     bool
	TimeLabel string
	Filters   []filterView
	Headers   []headerView
	Rows      []rowView
}

type filterView struct {
	TableID string
	Label   string
	Options []string
}

type headerView struct {
	TableID string
	Name    string
	Time    bool
}

type rowView struct {
	New   bool
	Attrs template.HTMLAttr
	Cells []cellView
}

type cellView struct {
	Text     string
	Link     string
	NewLabel bool
}

// clientTable feeds the embedded JSON the page script reads at load.
type clientTable struct {
	ID      string         `json:"id"`
	Filters []clientFilter `json:"filters"`
}

type clientFilter struct {
	Name string `json:"name"`
	Attr string `json:"attr"`
}

// Render writes the complete HTML document for the given datasets.
func Render(w io.Writer, title string, datasets []models.Dataset, generatedAt time.Time) error {
	view := pageView{
		Title:       title,
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05"),
		CSS:         template.CSS(pageCSS),
		Script:      template.JS(pageScript),
	}

	clientTables := make([]clientTable, 0, len(datasets))

	for i, ds := range datasets {
		numeral := fmt.Sprintf("%d", i+1)
		if i < len(chineseNumerals) {
			numeral = chineseNumerals[i]
		}

		view.Tables = append(view.Tables, buildTableView(ds, numeral))
		clientTables = append(clientTables, buildClientTable(ds.Schema))
	}

	configJSON, err := json.Marshal(clientTables)
	if err != nil {
		return fmt.Errorf("failed to marshal table config: %w", err)
	}

	view.Config = template.JS(configJSON)

	if err := pageTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}

func buildClientTable(schema models.Schema) clientTable {
	ct := clientTable{ID: schema.ID, Filters: []clientFilter{}}

	for _, col := range schema.FilterCols {
		ct.Filters = append(ct.Filters, clientFilter{Name: col, Attr: attrName(col)})
	}

	return ct
}

func buildTableView(ds models.Dataset, numeral string) tableView {
	tv := tableView{
		ID:        ds.Schema.ID,
		Numeral:   numeral,
		Heading:   ds.Schema.Heading,
		Empty:     ds.Empty(),
		TimeLabel: ds.Schema.TimeCol,
	}

	if tv.Empty {
		return tv
	}

	for _, col := range ds.Schema.FilterCols {
		tv.Filters = append(tv.Filters, filterView{
			TableID: ds.Schema.ID,
			Label:   col,
			Options: filterOptions(&ds, col),
		})
	}

	for _, col := range ds.Schema.Columns {
		tv.Headers = append(tv.Headers, headerView{
			TableID: ds.Schema.ID,
			Name:    col,
			Time:    col == ds.Schema.TimeCol,
		})
	}

	keyIdx := ds.Schema.Index(ds.Schema.UniqueKey)
	linkIdx := ds.Schema.Index(ds.Schema.LinkCol)

	for i := range ds.Records {
		rec := &ds.Records[i]

		row := rowView{
			New:   rec.IsNew,
			Attrs: rowAttrs(&ds, i),
		}

		for j, value := range rec.Cells {
			cell := cellView{Text: value}

			if j == linkIdx && utils.IsAbsoluteURL(value) {
				cell.Link = value
			}

			if j == keyIdx && rec.IsNew {
				cell.NewLabel = true
			}

			row.Cells = append(row.Cells, cell)
		}

		tv.Rows = append(tv.Rows, row)
	}

	return tv
}

// filterOptions returns the distinct values of col sorted, with the
// no-data and uncategorized sentinels pinned to the front when present.
func filterOptions(ds *models.Dataset, col string) []string {
	seen := make(map[string]struct{})

	var values []string

	for i := range ds.Records {
		v := ds.Cell(i, col)
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)

	pinned := []string{}

	for _, sentinel := range []string{models.NoData, models.Uncategorized} {
		if _, ok := seen[sentinel]; ok {
			pinned = append(pinned, sentinel)
		}
	}

	for _, v := range values {
		if v == models.NoData || v == models.Uncategorized {
			continue
		}

		pinned = append(pinned, v)
	}

	return pinned
}

// rowAttrs builds the row-level data attributes driving client-side
// filtering and sorting.
func rowAttrs(ds *models.Dataset, i int) template.HTMLAttr {
	rec := &ds.Records[i]

	var sb strings.Builder

	for _, col := range ds.Schema.FilterCols {
		fmt.Fprintf(&sb, ` data-%s="%s"`, attrName(col), html.EscapeString(ds.Cell(i, col)))
	}

	fmt.Fprintf(&sb, ` data-is-new="%t"`, rec.IsNew)

	if ds.Schema.TimeCol != "" {
		fmt.Fprintf(&sb, ` data-timestamp="%d"`, rec.Timestamp())
		fmt.Fprintf(&sb, ` data-time-orig="%s"`, html.EscapeString(ds.Cell(i, ds.Schema.TimeCol)))
	}

	return template.HTMLAttr(sb.String())
}

// attrName turns a column name into its data-attribute suffix.
func attrName(col string) string {
	return strings.ToLower(strings.ReplaceAll(col, " ", "-"))
}
