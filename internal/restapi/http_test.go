package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"worlddeaths.org/internal/app"
	"worlddeaths.org/internal/logging"
	"worlddeaths.org/internal/models"
)

// createTestApi creates a RestAPI over the fixture dataset.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiFor(t, "cause_of_deaths.csv")
}

// createTestApiFor creates a RestAPI over the named file in testdata.
func createTestApiFor(t *testing.T, fixture string) *RestAPI {
	t.Helper()

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	cfg.Env = app.Test
	cfg.DataPath = filepath.Join("..", "..", "testdata", fixture)
	cfg.RateLimit = 0

	application, err := app.New(cfg, logging.NewStructuredLogger(io.Discard, 0))
	require.NoError(t, err)

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

func testRouter(api *RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// serveAndRetrieveEndpoint requests endpoint from a test server and returns
// the response together with its raw body.
func serveAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	server := httptest.NewServer(testRouter(api))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// decodeEntry decodes the standard envelope and re-decodes data.entry into v.
func decodeEntry(t *testing.T, body []byte, v interface{}) models.ResponseModel {
	t.Helper()

	var envelope struct {
		models.ResponseModel
		Data struct {
			Entry json.RawMessage `json:"entry"`
			List  json.RawMessage `json:"list"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	raw := envelope.Data.Entry
	if len(raw) == 0 {
		raw = envelope.Data.List
	}
	require.NoError(t, json.NewDecoder(bytes.NewReader(raw)).Decode(v))
	return envelope.ResponseModel
}
