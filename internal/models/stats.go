package models

import "worlddeaths.org/internal/deaths"

// YearTotals is the choropleth data of one year.
type YearTotals struct {
	Year      int                   `json:"year"`
	Countries []deaths.CountryTotal `json:"countries"`
}

// CauseRanking is a sorted list of cause totals, for the whole world or for
// one country, over one year or all years.
type CauseRanking struct {
	Country string              `json:"country,omitempty"`
	Year    int                 `json:"year,omitempty"`
	Causes  []deaths.CauseTotal `json:"causes"`
}

// CountryTrend is one cause for one country, year by year.
type CountryTrend struct {
	Country string             `json:"country"`
	Cause   string             `json:"cause"`
	Points  []deaths.YearValue `json:"points"`
}
