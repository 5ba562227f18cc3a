package restapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worlddeaths.org/internal/deaths"
	"worlddeaths.org/internal/models"
)

func TestHealthHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveAndRetrieveEndpoint(t, api, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
	assert.Contains(t, string(body), `"rows":7`)
}

func TestSummaryHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/summary")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var entry summaryEntry
	envelope := decodeEntry(t, body, &entry)

	assert.Equal(t, http.StatusOK, envelope.Code)
	assert.Equal(t, "OK", envelope.Text)
	assert.Equal(t, 2, envelope.Version)
	assert.Equal(t, 7, entry.Rows)
	assert.Equal(t, 2017, entry.FirstYear)
	assert.Equal(t, 2019, entry.LastYear)
	assert.Equal(t, 2019, entry.DefaultYear)
	assert.Equal(t, "Indonesia", entry.DefaultCountry)
	assert.Equal(t, "Cardiovascular Diseases", entry.TrendCause)
	assert.Equal(t, 3, entry.TopN)
	assert.NotContains(t, string(body), "testdata")
}

func TestCausesHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/causes")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ranking models.CauseRanking
	decodeEntry(t, body, &ranking)

	require.Len(t, ranking.Causes, 5)
	assert.Equal(t, deaths.CauseTotal{Cause: "Cardiovascular Diseases", Total: 11111000}, ranking.Causes[0])
	assert.Equal(t, deaths.CauseTotal{Cause: "Malaria", Total: 4780}, ranking.Causes[4])
}

func TestYearTotalsHandler(t *testing.T) {
	api := createTestApi(t)

	t.Run("known year", func(t *testing.T) {
		resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/years/2019/totals")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var totals models.YearTotals
		decodeEntry(t, body, &totals)

		assert.Equal(t, 2019, totals.Year)
		require.Len(t, totals.Countries, 3)
		assert.Equal(t, "China", totals.Countries[1].Country)
		assert.Equal(t, float64(7354340), totals.Countries[1].Total)
	})

	t.Run("year without data", func(t *testing.T) {
		resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/years/1990/totals")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(body), `"code":404`)
	})

	t.Run("invalid year", func(t *testing.T) {
		resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/years/20x9/totals")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errs struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
		}
		require.NoError(t, json.Unmarshal(body, &errs))
		assert.Equal(t, []string{"year must be a number"}, errs.FieldErrors["year"])
	})
}

func TestTopCausesHandler(t *testing.T) {
	api := createTestApi(t)

	testCases := []struct {
		name       string
		endpoint   string
		wantStatus int
		wantCauses []string
	}{
		{
			name:       "default limit",
			endpoint:   "/api/v1/years/2019/top-causes",
			wantStatus: http.StatusOK,
			wantCauses: []string{"Cardiovascular Diseases", "Neoplasms", "Fire, Heat, and Hot Substances"},
		},
		{
			name:       "explicit limit",
			endpoint:   "/api/v1/years/2019/top-causes?limit=1",
			wantStatus: http.StatusOK,
			wantCauses: []string{"Cardiovascular Diseases"},
		},
		{
			name:       "bad limit",
			endpoint:   "/api/v1/years/2019/top-causes?limit=-2",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown year",
			endpoint:   "/api/v1/years/2001/top-causes",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := serveAndRetrieveEndpoint(t, api, tc.endpoint)
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var ranking models.CauseRanking
			decodeEntry(t, body, &ranking)
			assert.Equal(t, 2019, ranking.Year)

			var got []string
			for _, c := range ranking.Causes {
				got = append(got, c.Cause)
			}
			assert.Equal(t, tc.wantCauses, got)
		})
	}
}

func TestCountriesHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/countries")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var countries []string
	decodeEntry(t, body, &countries)
	assert.Equal(t, []string{"Afghanistan", "China", "Indonesia"}, countries)
}

func TestCountryCausesHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/countries/Indonesia/causes")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ranking models.CauseRanking
	decodeEntry(t, body, &ranking)
	assert.Equal(t, "Indonesia", ranking.Country)
	require.Len(t, ranking.Causes, 5)
	assert.Equal(t, float64(1950000), ranking.Causes[0].Total)

	resp, _ = serveAndRetrieveEndpoint(t, api, "/api/v1/countries/Atlantis/causes")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = serveAndRetrieveEndpoint(t, api, "/api/v1/countries/%3Cscript%3E/causes")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCountryTrendHandler(t *testing.T) {
	api := createTestApi(t)

	t.Run("default cause", func(t *testing.T) {
		resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/countries/Indonesia/trend")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var trend models.CountryTrend
		decodeEntry(t, body, &trend)
		assert.Equal(t, "Cardiovascular Diseases", trend.Cause)
		assert.Equal(t, []deaths.YearValue{
			{Year: 2019, Value: 660000},
			{Year: 2018, Value: 650000},
			{Year: 2017, Value: 640000},
		}, trend.Points)
	})

	t.Run("explicit cause", func(t *testing.T) {
		resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/countries/China/trend?cause=Malaria")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var trend models.CountryTrend
		decodeEntry(t, body, &trend)
		assert.Equal(t, "China", trend.Country)
		assert.Equal(t, []deaths.YearValue{{Year: 2018, Value: 50}, {Year: 2019, Value: 40}}, trend.Points)
	})

	t.Run("unknown cause", func(t *testing.T) {
		resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/countries/China/trend?cause=Boredom")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), `"cause":["unknown cause"]`)
	})
}

func TestCountryTrendHandlerMissingCounts(t *testing.T) {
	api := createTestApiFor(t, "cause_of_deaths_missing.csv")

	resp, body := serveAndRetrieveEndpoint(t, api, "/api/v1/countries/Indonesia/trend?cause=Malaria")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var trend models.CountryTrend
	decodeEntry(t, body, &trend)
	assert.Equal(t, []deaths.YearValue{{Year: 2017, Value: 1600}, {Year: 2019, Value: 1400}}, trend.Points)

	resp, body = serveAndRetrieveEndpoint(t, api, "/api/v1/countries/Tuvalu/trend?cause=Malaria")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"points":[]`)
}
