package fiber_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasetsmx/storefront/internal/logger"
	adapter "github.com/datasetsmx/storefront/internal/logger/adapter/fiber"
)

type accessEntry struct {
	IP        string  `json:"IP"`
	Status    int     `json:"status"`
	Elapsed   float64 `json:"X-Performance"`
	URI       string  `json:"URI"`
	Method    string  `json:"method"`
	Host      string  `json:"host"`
	RequestID string  `json:"requestID"`
	Error     string  `json:"error"`
}

func newTestApp(cfg adapter.Config) *fiber.App {
	app := fiber.New(fiber.Config{CaseSensitive: true, Immutable: true})
	app.Use(adapter.New(cfg))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hola " + adapter.RequestID(ctx))
	})
	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	app.Get("/boom", func(_ *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "upstream down")
	})

	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		wantStatus int
		wantURI    string
		wantError  string
	}{
		{name: "root", targetPath: "/", wantStatus: fiber.StatusOK, wantURI: "/"},
		{name: "root with tab param", targetPath: "/?tab=bundles", wantStatus: fiber.StatusOK, wantURI: "/?tab=bundles"},
		{name: "multi slash", targetPath: "//test", wantStatus: fiber.StatusNotFound, wantURI: "//test"},
		{name: "handler error", targetPath: "/boom", wantStatus: fiber.StatusBadGateway, wantURI: "/boom", wantError: "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			app := newTestApp(adapter.Config{Output: &out})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.targetPath, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(adapter.HeaderRequestID))
			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			var entry accessEntry
			require.NoError(t, json.Unmarshal(out.Bytes(), &entry), out.String())

			assert.Equal(t, tt.wantStatus, entry.Status)
			assert.Equal(t, tt.wantURI, entry.URI)
			assert.Equal(t, fiber.MethodGet, entry.Method)
			assert.Equal(t, "example.com", entry.Host)
			assert.Equal(t, resp.Header.Get(adapter.HeaderRequestID), entry.RequestID)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, entry.Error)
				assert.Equal(t, "max-age=0", resp.Header.Get(fiber.HeaderCacheControl))
			}
		})
	}
}

func TestNew_KeepsIncomingRequestID(t *testing.T) {
	var out bytes.Buffer

	app := newTestApp(adapter.Config{Output: &out})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(adapter.HeaderRequestID, "abc-123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(adapter.HeaderRequestID))
	assert.Contains(t, out.String(), `"requestID":"abc-123"`)
}

func TestNew_SkipsCheckAlive(t *testing.T) {
	var out bytes.Buffer

	app := newTestApp(adapter.Config{
		Output:        &out,
		Config:        logger.Log{DisableCheckAlive: true},
		CheckAliveURI: "/checkalive",
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/checkalive", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out.String())
}

func TestNew_Next(t *testing.T) {
	var out bytes.Buffer

	app := newTestApp(adapter.Config{
		Output: &out,
		Next:   func(_ *fiber.Ctx) bool { return true },
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestNew_NoWriters(t *testing.T) {
	app := newTestApp(adapter.Config{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
