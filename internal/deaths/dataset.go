// Package deaths loads the worldwide cause-of-death table and answers the
// aggregate questions the dashboard charts are drawn from.
package deaths

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"worlddeaths.org/internal/logging"
)

// Identifier columns of the source CSV. Every other column counts deaths for
// one cause.
const (
	ColumnCountry = "Country/Territory"
	ColumnCode    = "Code"
	ColumnYear    = "Year"

	// columnTotal is the transient per-row sum added by CountryTotals.
	columnTotal = "Total"
)

var identifierColumns = []string{ColumnCountry, ColumnCode, ColumnYear}

var (
	// ErrNoData is returned when a filter (year, country) matches no rows.
	ErrNoData = errors.New("no rows match")
	// ErrUnknownCause is returned when a cause column does not exist.
	ErrUnknownCause = errors.New("unknown cause")
)

// Dataset is the loaded cause-of-death table. It is never mutated after
// Read returns, so one value can serve any number of concurrent readers.
type Dataset struct {
	frame      dataframe.DataFrame
	causes     []string
	countries  []string
	years      []int
	yearSet    map[int]bool
	countrySet map[string]bool
	source     string
}

// Load reads the dataset from a CSV file on disk. A failure to close the
// file is logged to logger.
func Load(path string, logger *slog.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, logger, "load_dataset")

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	ds.source = path
	return ds, nil
}

// Read parses a cause-of-death CSV. The identifier columns are read as text;
// cause columns must be numeric and every Year must be a four digit year.
func Read(r io.Reader) (*Dataset, error) {
	frame := dataframe.ReadCSV(r,
		dataframe.DetectTypes(true),
		dataframe.WithTypes(map[string]series.Type{
			ColumnCountry: series.String,
			ColumnCode:    series.String,
			ColumnYear:    series.String,
		}),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", frame.Err)
	}

	names := frame.Names()
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	for _, col := range identifierColumns {
		if !present[col] {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var causes []string
	for _, name := range names {
		if isIdentifier(name) {
			continue
		}
		switch frame.Col(name).Type() {
		case series.Int, series.Float:
			causes = append(causes, name)
		default:
			return nil, fmt.Errorf("column %q is not numeric", name)
		}
	}
	if len(causes) == 0 {
		return nil, errors.New("no cause-of-death columns")
	}

	ds := &Dataset{
		frame:      frame,
		causes:     causes,
		yearSet:    make(map[int]bool),
		countrySet: make(map[string]bool),
	}

	for i, raw := range frame.Col(ColumnYear).Records() {
		year, err := parseYear(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !ds.yearSet[year] {
			ds.yearSet[year] = true
			ds.years = append(ds.years, year)
		}
	}
	sort.Ints(ds.years)

	for _, country := range frame.Col(ColumnCountry).Records() {
		if !ds.countrySet[country] {
			ds.countrySet[country] = true
			ds.countries = append(ds.countries, country)
		}
	}
	sort.Strings(ds.countries)

	return ds, nil
}

// parseYear accepts the "%Y" layout only.
func parseYear(raw string) (int, error) {
	t, err := time.Parse("2006", raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return t.Year(), nil
}

func isIdentifier(name string) bool {
	for _, col := range identifierColumns {
		if name == col {
			return true
		}
	}
	return false
}

// Source is the file the dataset was loaded from, empty for Read.
func (ds *Dataset) Source() string {
	return ds.source
}

// Len is the number of (country, year) rows.
func (ds *Dataset) Len() int {
	return ds.frame.Nrow()
}

// Causes returns the cause-of-death columns in file order.
func (ds *Dataset) Causes() []string {
	return append([]string(nil), ds.causes...)
}

// Countries returns the distinct country labels, sorted.
func (ds *Dataset) Countries() []string {
	return append([]string(nil), ds.countries...)
}

// Years returns the distinct years, ascending.
func (ds *Dataset) Years() []int {
	return append([]int(nil), ds.years...)
}

// YearRange returns the first and last year in the dataset.
func (ds *Dataset) YearRange() (first, last int) {
	if len(ds.years) == 0 {
		return 0, 0
	}
	return ds.years[0], ds.years[len(ds.years)-1]
}

func (ds *Dataset) HasYear(year int) bool {
	return ds.yearSet[year]
}

func (ds *Dataset) HasCountry(country string) bool {
	return ds.countrySet[country]
}

func (ds *Dataset) HasCause(cause string) bool {
	for _, c := range ds.causes {
		if c == cause {
			return true
		}
	}
	return false
}

// Summary describes the loaded dataset.
type Summary struct {
	Source    string   `json:"source,omitempty"`
	Rows      int      `json:"rows"`
	FirstYear int      `json:"firstYear"`
	LastYear  int      `json:"lastYear"`
	Countries int      `json:"countries"`
	Causes    []string `json:"causes"`
}

func (ds *Dataset) Summary() Summary {
	first, last := ds.YearRange()
	return Summary{
		Source:    ds.source,
		Rows:      ds.Len(),
		FirstYear: first,
		LastYear:  last,
		Countries: len(ds.countries),
		Causes:    ds.Causes(),
	}
}

func yearValue(year int) string {
	return strconv.Itoa(year)
}
