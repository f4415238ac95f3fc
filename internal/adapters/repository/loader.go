// Package repository reads the race table from disk and keeps quiz sessions
// in memory.
package repository

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/paddock/internal/domain/model"
	"github.com/okian/paddock/internal/domain/reference"
	"github.com/okian/paddock/pkg/logger"
	"github.com/okian/paddock/pkg/metrics"
)

// Columns every dataset must provide, matched case-insensitively.
var Columns = []string{"Year", "Grand Prix", "Date", "Winner", "Team"}

// SQLiteTable is the table read from SQLite datasets.
const SQLiteTable = "races"

// dateLayouts are tried in order; the second accepts single digit days.
var dateLayouts = []string{model.DateLayout, "2 Jan 2006"}

// Dataset is the result of a load.
type Dataset struct {
	Records []model.RaceRecord
	Rows    int // data rows read, before dropping
	Dropped int // rows discarded because the date did not parse
}

// Loader reads race tables. The format follows the file extension.
type Loader struct {
	log       logger.Logger
	normalize func(string) string
}

// NewLoader creates a loader with options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		log:       logger.Nop(),
		normalize: reference.NormalizeEvent,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path. A missing or unreadable file is an error; rows whose
// date does not parse are dropped and counted.
func (l *Loader) Load(ctx context.Context, path string) (Dataset, error) {
	start := time.Now()
	var (
		header []string
		rows   [][]string
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		header, rows, err = readCSV(path)
	case ".html", ".htm":
		header, rows, err = readHTML(path)
	case ".db", ".sqlite", ".sqlite3":
		header, rows, err = readSQLite(ctx, path)
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("load %s: %w", path, err)
	}

	ds, err := l.parse(header, rows)
	if err != nil {
		return Dataset{}, fmt.Errorf("load %s: %w", path, err)
	}

	elapsed := time.Since(start)
	metrics.UpdateDatasetRecords(len(ds.Records), ds.Dropped)
	metrics.RecordDatasetLoadDuration(float64(elapsed.Microseconds()) / 1000)
	l.log.Info(ctx, "dataset loaded",
		logger.String("path", path),
		logger.Int("rows", ds.Rows),
		logger.Int("records", len(ds.Records)),
		logger.Int("dropped", ds.Dropped),
		logger.Duration("elapsed", elapsed))
	return ds, nil
}

// parse maps header positions and converts rows into records.
func (l *Loader) parse(header []string, rows [][]string) (Dataset, error) {
	idx, err := columnIndex(header)
	if err != nil {
		return Dataset{}, err
	}
	ds := Dataset{Records: make([]model.RaceRecord, 0, len(rows)), Rows: len(rows)}
	for _, row := range rows {
		rec, ok := l.record(row, idx)
		if !ok {
			ds.Dropped++
			continue
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func (l *Loader) record(row []string, idx [5]int) (model.RaceRecord, bool) {
	cell := func(i int) string {
		if idx[i] < len(row) {
			return strings.TrimSpace(row[idx[i]])
		}
		return ""
	}
	raw := cell(2)
	date, ok := parseDate(raw)
	if !ok {
		return model.RaceRecord{}, false
	}
	year, err := strconv.Atoi(cell(0))
	if err != nil {
		year = date.Year()
	}
	return model.RaceRecord{
		Year:      year,
		GrandPrix: l.normalize(cell(1)),
		Date:      date,
		RawDate:   raw,
		Winner:    cell(3),
		Team:      cell(4),
	}, true
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// columnIndex finds every required column in header.
func columnIndex(header []string) ([5]int, error) {
	var idx [5]int
	for i, want := range Columns {
		idx[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), want) {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, want)
		}
	}
	return idx, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoTable
	}
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

// readHTML takes the first table whose header row names every column.
func readHTML(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, nil, err
	}

	var (
		header []string
		rows   [][]string
		found  bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		trs := table.Find("tr")
		if trs.Length() == 0 {
			return true
		}
		h := cells(trs.First())
		if _, err := columnIndex(h); err != nil {
			return true
		}
		header, found = h, true
		trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
			if c := cells(tr); len(c) > 0 {
				rows = append(rows, c)
			}
		})
		return false
	})
	if !found {
		return nil, nil, ErrNoTable
	}
	return header, rows, nil
}

func cells(tr *goquery.Selection) []string {
	var out []string
	tr.Find("th, td").Each(func(_ int, c *goquery.Selection) {
		out = append(out, strings.TrimSpace(c.Text()))
	})
	return out
}

func readSQLite(ctx context.Context, path string) ([]string, [][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, err
	}
	dsn := &url.URL{Scheme: "file", Path: path, OmitHost: true, RawQuery: "mode=ro"}
	db, err := sql.Open("sqlite", dsn.String())
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	quoted := make([]string, len(Columns))
	for i, c := range Columns {
		quoted[i] = `"` + c + `"`
	}
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(quoted, ", "), SQLiteTable)
	res, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoTable, err)
	}
	defer res.Close()

	var rows [][]string
	for res.Next() {
		vals := make([]sql.NullString, len(Columns))
		dest := make([]any, len(vals))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := res.Scan(dest...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = v.String
		}
		rows = append(rows, row)
	}
	if err := res.Err(); err != nil {
		return nil, nil, err
	}
	return Columns, rows, nil
}
