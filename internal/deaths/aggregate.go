package deaths

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CauseTotal is the number of deaths attributed to one cause.
type CauseTotal struct {
	Cause string  `json:"cause"`
	Total float64 `json:"total"`
}

// CountryTotal is the number of deaths from all causes for one country in
// one year.
type CountryTotal struct {
	Country string  `json:"country"`
	Code    string  `json:"code"`
	Year    int     `json:"year"`
	Total   float64 `json:"total"`
}

// YearValue is one point of a per-year series.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// CountryTotals returns the all-cause total of every country for one year,
// the data behind the world map.
func (ds *Dataset) CountryTotals(year int) ([]CountryTotal, error) {
	if !ds.HasYear(year) {
		return nil, fmt.Errorf("year %d: %w", year, ErrNoData)
	}

	rows := ds.frame.Filter(dataframe.F{
		Colname:    ColumnYear,
		Comparator: series.Eq,
		Comparando: yearValue(year),
	})
	if rows.Err != nil {
		return nil, fmt.Errorf("error filtering year %d: %w", year, rows.Err)
	}

	rows = rows.Mutate(series.New(rowSums(rows, ds.causes), series.Float, columnTotal))
	if rows.Err != nil {
		return nil, fmt.Errorf("error computing totals: %w", rows.Err)
	}

	countries := rows.Col(ColumnCountry).Records()
	codes := rows.Col(ColumnCode).Records()
	totals := rows.Col(columnTotal).Float()

	result := make([]CountryTotal, len(countries))
	for i := range countries {
		result[i] = CountryTotal{
			Country: countries[i],
			Code:    codes[i],
			Year:    year,
			Total:   totals[i],
		}
	}
	return result, nil
}

// CauseTotals sums every cause over all countries and years, largest first.
func (ds *Dataset) CauseTotals() []CauseTotal {
	return columnSums(ds.frame)
}

// TopCauses returns the n causes with the most deaths worldwide in one year.
// n <= 0 returns every cause.
func (ds *Dataset) TopCauses(year, n int) ([]CauseTotal, error) {
	if !ds.HasYear(year) {
		return nil, fmt.Errorf("year %d: %w", year, ErrNoData)
	}

	rows := ds.frame.Filter(dataframe.F{
		Colname:    ColumnYear,
		Comparator: series.Eq,
		Comparando: yearValue(year),
	})
	if rows.Err != nil {
		return nil, fmt.Errorf("error filtering year %d: %w", year, rows.Err)
	}

	totals := columnSums(rows)
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals, nil
}

// CountryCauseTotals sums every cause over all years for one country,
// largest first.
func (ds *Dataset) CountryCauseTotals(country string) ([]CauseTotal, error) {
	rows, err := ds.countryRows(country)
	if err != nil {
		return nil, err
	}
	return columnSums(rows), nil
}

// CountryTrend returns the yearly deaths from one cause in one country,
// ordered by value descending. Years with a missing count are left out.
func (ds *Dataset) CountryTrend(country, cause string) ([]YearValue, error) {
	if !ds.HasCause(cause) {
		return nil, fmt.Errorf("%q: %w", cause, ErrUnknownCause)
	}

	rows, err := ds.countryRows(country)
	if err != nil {
		return nil, err
	}

	rows = rows.Arrange(dataframe.RevSort(cause))
	if rows.Err != nil {
		return nil, fmt.Errorf("error sorting by %q: %w", cause, rows.Err)
	}

	years := rows.Col(ColumnYear).Records()
	values := rows.Col(cause).Float()

	points := make([]YearValue, 0, len(years))
	for i, raw := range years {
		// missing counts ("NA") have no point to plot
		if math.IsNaN(values[i]) {
			continue
		}
		year, err := parseYear(raw)
		if err != nil {
			return nil, err
		}
		points = append(points, YearValue{Year: year, Value: values[i]})
	}
	return points, nil
}

func (ds *Dataset) countryRows(country string) (dataframe.DataFrame, error) {
	if !ds.HasCountry(country) {
		return dataframe.DataFrame{}, fmt.Errorf("country %q: %w", country, ErrNoData)
	}

	rows := ds.frame.Filter(dataframe.F{
		Colname:    ColumnCountry,
		Comparator: series.Eq,
		Comparando: country,
	})
	if rows.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error filtering country %q: %w", country, rows.Err)
	}
	return rows, nil
}

// columnSums drops the identifier columns and sums what is left, one total
// per cause, sorted largest first with ties broken by cause name.
func columnSums(df dataframe.DataFrame) []CauseTotal {
	causes := df.Drop(identifierColumns)

	totals := make([]CauseTotal, 0, causes.Ncol())
	for _, name := range causes.Names() {
		totals = append(totals, CauseTotal{
			Cause: name,
			Total: sum(causes.Col(name).Float()),
		})
	}

	SortCauseTotals(totals)
	return totals
}

// rowSums returns, for every row, the sum of all cause columns.
func rowSums(df dataframe.DataFrame, causes []string) []float64 {
	totals := make([]float64, df.Nrow())
	for _, cause := range causes {
		for i, v := range df.Col(cause).Float() {
			if !math.IsNaN(v) {
				totals[i] += v
			}
		}
	}
	return totals
}

// sum skips missing values.
func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		total += v
	}
	return total
}

// SortCauseTotals orders totals largest first, then by cause name.
func SortCauseTotals(totals []CauseTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Cause < totals[j].Cause
	})
}
