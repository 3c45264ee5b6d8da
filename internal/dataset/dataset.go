// Package dataset loads the hourly bikeshare observations from CSV.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Column names required in the source file.
const (
	ColDate    = "dteday"
	ColHour    = "hr"
	ColSeason  = "season"
	ColWeekday = "weekday"
	ColCount   = "cnt"
)

var requiredColumns = []string{ColDate, ColHour, ColSeason, ColWeekday, ColCount}

var dateFormats = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"1/2/2006",
}

// Dataset is the immutable record set loaded at startup.
type Dataset struct {
	path    string
	records []models.Record
	bounds  models.DateRange
}

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	ds.path = path
	return ds, nil
}

// Read parses a dataset from r.
func Read(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to read csv: %w", df.Err)
	}

	names := df.Names()
	for i, n := range names {
		names[i] = strings.TrimSpace(n)
	}
	if err := df.SetNames(names...); err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if err := checkColumns(names); err != nil {
		return nil, err
	}
	if df.Nrow() == 0 {
		return nil, ErrEmpty
	}

	return fromFrame(df)
}

func checkColumns(names []string) error {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, col := range requiredColumns {
		if !have[col] {
			return &ParseError{Column: col, Err: errors.New("missing required column")}
		}
	}
	return nil
}

// column returns the raw cells of the named column.
func column(df dataframe.DataFrame, name string) ([]string, error) {
	s := df.Col(name)
	if s.Err != nil {
		return nil, &ParseError{Column: name, Err: s.Err}
	}
	return s.Records(), nil
}

func fromFrame(df dataframe.DataFrame) (*Dataset, error) {
	cols := make(map[string][]string, len(requiredColumns))
	for _, name := range requiredColumns {
		cells, err := column(df, name)
		if err != nil {
			return nil, err
		}
		cols[name] = cells
	}
	dates, hours, seasons := cols[ColDate], cols[ColHour], cols[ColSeason]
	weekdays, counts := cols[ColWeekday], cols[ColCount]

	records := make([]models.Record, len(dates))
	for i := range dates {
		row := i + 1

		date, err := parseDate(dates[i])
		if err != nil {
			return nil, &ParseError{Row: row, Column: ColDate, Value: dates[i], Err: err}
		}

		hour, err := parseCode(hours[i], 0, 23)
		if err != nil {
			return nil, &ParseError{Row: row, Column: ColHour, Value: hours[i], Err: err}
		}

		season, err := parseCode(seasons[i], 1, 4)
		if err != nil {
			return nil, &ParseError{Row: row, Column: ColSeason, Value: seasons[i], Err: err}
		}

		weekday, err := parseCode(weekdays[i], 0, 6)
		if err != nil {
			return nil, &ParseError{Row: row, Column: ColWeekday, Value: weekdays[i], Err: err}
		}

		count, err := strconv.ParseInt(strings.TrimSpace(counts[i]), 10, 64)
		if err == nil && count < 0 {
			err = errors.New("count must not be negative")
		}
		if err != nil {
			return nil, &ParseError{Row: row, Column: ColCount, Value: counts[i], Err: err}
		}

		records[i] = models.Record{
			Date:    date,
			Hour:    hour,
			Season:  season,
			Weekday: weekday,
			Count:   count,
		}
	}

	return New(records), nil
}

// New wraps an in-memory record set. The slice must not be modified afterwards.
func New(records []models.Record) *Dataset {
	ds := &Dataset{records: records}
	for i, r := range records {
		if i == 0 || r.Date.Before(ds.bounds.Start) {
			ds.bounds.Start = r.Date
		}
		if i == 0 || r.Date.After(ds.bounds.End) {
			ds.bounds.End = r.Date
		}
	}
	return ds
}

// Records returns the loaded records. Callers must treat it as read-only.
func (d *Dataset) Records() []models.Record {
	return d.records
}

// Bounds returns the observed minimum and maximum dates.
func (d *Dataset) Bounds() models.DateRange {
	return d.bounds
}

// Len returns the number of hourly rows.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Path returns the file the dataset was loaded from, if any.
func (d *Dataset) Path() string {
	return d.path
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return models.Day(t), nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func parseCode(s string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("value out of range %d..%d", lo, hi)
	}
	return v, nil
}
