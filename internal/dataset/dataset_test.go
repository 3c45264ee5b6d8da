package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

const sampleCSV = `instant,dteday,season,yr,mnth,hr,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt
1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.2879,0.81,0,3,13,16
2,2011-01-01,1,0,1,1,0,6,0,1,0.22,0.2727,0.8,0,8,32,40
3,2011-01-02,1,0,1,0,0,0,0,1,0.22,0.2727,0.8,0,5,27,32
4,2012-12-31,1,1,12,23,0,1,1,1,0.26,0.2727,0.65,0.1343,7,42,49
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hour.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, sampleCSV)

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if ds.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", ds.Len())
	}
	if ds.Path() != path {
		t.Errorf("Path() = %q, want %q", ds.Path(), path)
	}

	first := ds.Records()[0]
	if first.Date.Format(models.DateLayout) != "2011-01-01" {
		t.Errorf("first date = %v", first.Date)
	}
	if first.Hour != 0 || first.Season != 1 || first.Weekday != 6 || first.Count != 16 {
		t.Errorf("first record = %+v", first)
	}

	bounds := ds.Bounds()
	if bounds.Start.Format(models.DateLayout) != "2011-01-01" {
		t.Errorf("Bounds().Start = %v", bounds.Start)
	}
	if bounds.End.Format(models.DateLayout) != "2012-12-31" {
		t.Errorf("Bounds().End = %v", bounds.End)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestRead_DateFormats(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"ISO", "2011-03-04"},
		{"ISOWithTime", "2011-03-04 00:00:00"},
		{"ISOWithT", "2011-03-04T00:00:00"},
		{"RFC3339", "2011-03-04T00:00:00Z"},
		{"Slashes", "2011/03/04"},
		{"US", "3/4/2011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "dteday,hr,season,weekday,cnt\n" + tt.date + ",5,1,5,10\n"
			ds, err := Read(strings.NewReader(content))
			if err != nil {
				t.Fatalf("Read() failed: %v", err)
			}
			if got := ds.Records()[0].Date.Format(models.DateLayout); got != "2011-03-04" {
				t.Errorf("date = %s, want 2011-03-04", got)
			}
		})
	}
}

func TestRead_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  string
		row     int
	}{
		{"BadDate", "dteday,hr,season,weekday,cnt\nnot-a-date,0,1,0,1\n", ColDate, 1},
		{"BadHour", "dteday,hr,season,weekday,cnt\n2011-01-01,24,1,0,1\n", ColHour, 1},
		{"BadSeason", "dteday,hr,season,weekday,cnt\n2011-01-01,0,1,0,1\n2011-01-01,1,5,0,1\n", ColSeason, 2},
		{"BadWeekday", "dteday,hr,season,weekday,cnt\n2011-01-01,0,1,7,1\n", ColWeekday, 1},
		{"NegativeCount", "dteday,hr,season,weekday,cnt\n2011-01-01,0,1,0,-3\n", ColCount, 1},
		{"TextCount", "dteday,hr,season,weekday,cnt\n2011-01-01,0,1,0,many\n", ColCount, 1},
		{"MissingColumn", "dteday,hr,season,cnt\n2011-01-01,0,1,1\n", ColWeekday, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.content))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Read() error = %v, want *ParseError", err)
			}
			if perr.Column != tt.column {
				t.Errorf("Column = %q, want %q", perr.Column, tt.column)
			}
			if perr.Row != tt.row {
				t.Errorf("Row = %d, want %d", perr.Row, tt.row)
			}
			if perr.Error() == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	_, err := Read(strings.NewReader("dteday,hr,season,weekday,cnt\n"))
	if err == nil {
		t.Fatal("Read() should fail for a dataset without rows")
	}
}

func TestRead_HeaderWhitespace(t *testing.T) {
	csv := "dteday, hr, season , weekday,\tcnt\n" +
		"2011-01-01,0,1,6,10\n" +
		"2011-01-02, 5, 1, 0, 20\n"

	ds, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
	got := ds.Records()[1]
	if got.Hour != 5 || got.Weekday != 0 || got.Count != 20 {
		t.Errorf("second record = %+v", got)
	}
}

func TestColumn_Unknown(t *testing.T) {
	df := dataframe.ReadCSV(strings.NewReader("a,b\n1,2\n"), dataframe.DetectTypes(false))

	_, err := column(df, ColCount)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Column != ColCount {
		t.Fatalf("column() error = %v, want *ParseError for %q", err, ColCount)
	}

	cells, err := column(df, "a")
	if err != nil || len(cells) != 1 || cells[0] != "1" {
		t.Errorf("column(a) = %v, %v", cells, err)
	}
}

func TestNew_Bounds(t *testing.T) {
	d1, _ := models.ParseDay("2011-05-01")
	d2, _ := models.ParseDay("2011-02-01")
	d3, _ := models.ParseDay("2011-09-01")

	ds := New([]models.Record{{Date: d1}, {Date: d2}, {Date: d3}})
	if !ds.Bounds().Start.Equal(d2) || !ds.Bounds().End.Equal(d3) {
		t.Errorf("Bounds() = %s", ds.Bounds())
	}
	if ds.Path() != "" {
		t.Errorf("Path() = %q, want empty", ds.Path())
	}
}
