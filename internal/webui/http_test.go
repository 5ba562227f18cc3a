package webui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"worlddeaths.org/internal/app"
	"worlddeaths.org/internal/logging"
)

func testConfig(t *testing.T) app.Config {
	t.Helper()

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	cfg.Env = app.Test
	cfg.DataPath = filepath.Join("..", "..", "testdata", "cause_of_deaths.csv")
	cfg.ImagePath = ""
	return cfg
}

func createTestWebUI(t *testing.T, cfg app.Config) *WebUI {
	t.Helper()

	application, err := app.New(cfg, logging.NewStructuredLogger(io.Discard, 0))
	require.NoError(t, err)
	return NewWebUI(application)
}

func serve(t *testing.T, webUI *WebUI, endpoint string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	router := httprouter.New()
	webUI.SetWebUIRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, endpoint, nil))
	return w, w.Body.String()
}

func writeImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "death.jpg")
	// JPEG SOI/EOI markers are enough for content sniffing.
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xff, 0xd9}, 0o600))
	return path
}
