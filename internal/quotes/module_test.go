package quotes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sheetcut_backend/internal/config"
	"sheetcut_backend/internal/ecwid"
	apphttp "sheetcut_backend/internal/http"
	"sheetcut_backend/platform/logger"
	"sheetcut_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type fakeCatalog struct {
	id  int64
	err error
}

func (f *fakeCatalog) CreateProduct(_ context.Context, _ ecwid.NewProduct) (int64, error) {
	return f.id, f.err
}

func newTestEngine(cfg *config.Config, catalog *fakeCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	log := logger.New("development")

	module := NewModule(cfg, catalog, validator.New(), log)
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine})
	return engine
}

func TestPreflight_CORSFallbackChain(t *testing.T) {
	engine := newTestEngine(&config.Config{}, &fakeCatalog{id: 1})

	// No override, no origin: wildcard.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/quote", nil)
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}

	// No override: echo the request origin.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/quote", nil)
	req.Header.Set("Origin", "https://shop.example")
	engine.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example" {
		t.Fatalf("expected echoed origin, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("expected Vary: Origin, got %q", got)
	}
}

func TestPreflight_CORSConfiguredOverride(t *testing.T) {
	engine := newTestEngine(&config.Config{AllowedOrigin: "https://store.example"}, &fakeCatalog{id: 1})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/quote", nil)
	req.Header.Set("Origin", "https://other.example")
	engine.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://store.example" {
		t.Fatalf("expected configured origin, got %q", got)
	}
}

func TestCreateQuote_Endpoint(t *testing.T) {
	cfg := &config.Config{StoreID: "100500", APIToken: "tok"}
	engine := newTestEngine(cfg, &fakeCatalog{id: 4242})

	body := `{"lengthMm": 1210, "thickness": "0.6"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://shop.example")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example" {
		t.Fatalf("expected CORS headers on the create response, got %q", got)
	}

	var resp struct {
		OK        bool    `json:"ok"`
		ProductID int64   `json:"productId"`
		Price     float64 `json:"price"`
		Area      float64 `json:"area"`
		SKU       string  `json:"sku"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK || resp.ProductID != 4242 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Price != 36.6 || resp.Area != 1.464 {
		t.Fatalf("unexpected breakdown: %+v", resp)
	}
	if !strings.HasPrefix(resp.SKU, "CUST-") || !strings.HasSuffix(resp.SKU, "-1210-06") {
		t.Fatalf("unexpected sku %q", resp.SKU)
	}
}

func TestCreateQuote_MalformedBodyIsInternalError(t *testing.T) {
	cfg := &config.Config{StoreID: "100500", APIToken: "tok"}
	engine := newTestEngine(cfg, &fakeCatalog{id: 1})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for malformed body, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS headers on the error response, got %q", got)
	}
}

func TestCreateQuote_ValidationStatus(t *testing.T) {
	cfg := &config.Config{StoreID: "100500", APIToken: "tok"}
	engine := newTestEngine(cfg, &fakeCatalog{id: 1})

	body := `{"lengthMm": 999, "thickness": "0.6"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
