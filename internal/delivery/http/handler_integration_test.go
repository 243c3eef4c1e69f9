package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tebramedicals/medtech-site/config"
	"github.com/tebramedicals/medtech-site/internal/domain"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/cache"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/registry"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/sink"
	"github.com/tebramedicals/medtech-site/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	// Run tests
	exitCode := m.Run()

	// Exit with the test result code
	os.Exit(exitCode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"chrome-extension://*", "http://localhost:3000"},
		},
		Cache:     config.CacheConfig{TTL: time.Minute, MaxEntries: 100},
		RateLimit: config.RateLimitConfig{PerMinute: 5, Burst: 3},
	}
}

// setupTestRouter creates a router over the real registry, cache and log sink.
// The returned observer captures everything the application logs.
func setupTestRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	return setupTestRouterWithConfig(t, testConfig())
}

func setupTestRouterWithConfig(t *testing.T, cfg *config.Config) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	memoryCache := cache.NewMemoryCache(time.Hour, cfg.Cache.MaxEntries)
	t.Cleanup(memoryCache.Close)

	catalog := usecase.NewCatalogService(registry.NewStatic(), memoryCache, logger, usecase.CatalogServiceConfig{CacheTTL: cfg.Cache.TTL})
	contact := usecase.NewContactService(sink.NewLogSink(logger))

	router, err := SetupRouter(cfg, NewHandler(catalog, contact, logger))
	if err != nil {
		t.Fatalf("SetupRouter() error = %v", err)
	}
	return router, logs
}

func do(router *gin.Engine, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

// TestHealthCheckEndpoint tests the health check endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/health", "", "")
		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		decodeJSON(t, w, &response)

		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "medtech-site" {
			t.Errorf("service = %v, want medtech-site", response["service"])
		}
		if response["version"] != Version {
			t.Errorf("version = %v, want %s", response["version"], Version)
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			w := do(router, method, "/health", "", "")
			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestPages(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		contains []string
	}{
		{
			name:     "home",
			path:     "/",
			contains: []string{"<title>Home | MedTech Solutions</title>", "Precision Equipment", `href="/" class="active"`, `data-scene="`},
		},
		{
			name:     "about",
			path:     "/about",
			contains: []string{"Leadership Team", "ISO 13485", `href="/about" class="active"`},
		},
		{
			name:     "products",
			path:     "/products",
			contains: []string{"<h3>Digital X-Ray System</h3>", "<h3>Infusion Pump</h3>", `href="/products" class="active"`},
		},
		{
			name:     "contact",
			path:     "/contact",
			contains: []string{"Send us a Message", "contact@tebramedicals.com", `action="/contact"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			w := do(router, "GET", tt.path, "", "")
			if w.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q, want text/html", ct)
			}
			body := w.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
			if !strings.Contains(body, "All rights reserved") {
				t.Error("body missing footer")
			}
		})
	}
}

func TestProductsPageFiltering(t *testing.T) {
	allNames := []string{
		"Digital X-Ray System",
		"Patient Monitor",
		"Ultrasound Machine",
		"Ventilator",
		"Defibrillator",
		"Infusion Pump",
	}

	tests := []struct {
		name      string
		query     url.Values
		want      []string
		wantEmpty bool
	}{
		{
			name:  "search text",
			query: url.Values{"q": {"ultra"}},
			want:  []string{"Ultrasound Machine"},
		},
		{
			name:  "category",
			query: url.Values{"category": {"Imaging"}},
			want:  []string{"Digital X-Ray System", "Ultrasound Machine"},
		},
		{
			name:      "no match",
			query:     url.Values{"q": {"zzz"}},
			wantEmpty: true,
		},
		{
			name:      "OT label has no products",
			query:     url.Values{"category": {"OT"}},
			wantEmpty: true,
		},
		{
			name:  "category and text",
			query: url.Values{"category": {"Therapy"}, "q": {"mode"}},
			want:  []string{"Infusion Pump"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			w := do(router, "GET", "/products?"+tt.query.Encode(), "", "")
			if w.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
			}
			body := w.Body.String()

			if got := strings.Contains(body, "No products found"); got != tt.wantEmpty {
				t.Errorf("empty message shown = %v, want %v", got, tt.wantEmpty)
			}

			wanted := make(map[string]bool, len(tt.want))
			for _, name := range tt.want {
				wanted[name] = true
			}
			last := -1
			for _, name := range allNames {
				idx := strings.Index(body, "<h3>"+name+"</h3>")
				if wanted[name] {
					if idx < 0 {
						t.Errorf("missing product %q", name)
						continue
					}
					if idx < last {
						t.Errorf("product %q rendered out of registry order", name)
					}
					last = idx
				} else if idx >= 0 {
					t.Errorf("unexpected product %q", name)
				}
			}
		})
	}

	t.Run("selected category is highlighted and query kept", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/products?q=pump&category=Therapy", "", "")
		body := w.Body.String()
		if !strings.Contains(body, `class="chip selected">Therapy</a>`) {
			t.Error("Therapy chip not marked selected")
		}
		if !strings.Contains(body, `value="pump"`) {
			t.Error("search input lost the query")
		}
		if !strings.Contains(body, `href="/products?category=Emergency&amp;q=pump"`) {
			t.Error("category links should carry the current query")
		}
	})
}

func TestMobileMenu(t *testing.T) {
	router, _ := setupTestRouter(t)

	closed := do(router, "GET", "/about", "", "").Body.String()
	if strings.Contains(closed, `class="nav-mobile"`) {
		t.Error("mobile menu rendered while closed")
	}
	if !strings.Contains(closed, `href="/about?menu=open"`) {
		t.Error("toggle should open the menu")
	}

	open := do(router, "GET", "/about?menu=open", "", "").Body.String()
	if !strings.Contains(open, `class="nav-mobile"`) {
		t.Error("mobile menu missing while open")
	}
	if !strings.Contains(open, `aria-expanded="true"`) {
		t.Error("toggle should report expanded")
	}
}

func TestContactForm(t *testing.T) {
	validForm := url.Values{
		"name":    {"Dr. Jane Doe"},
		"email":   {"jane@hospital.org"},
		"company": {"City Hospital"},
		"subject": {"Ventilator quote"},
		"message": {"Please send pricing for 4 units."},
	}
	const formType = "application/x-www-form-urlencoded"

	t.Run("redirects after accepted submission", func(t *testing.T) {
		router, logs := setupTestRouter(t)

		w := do(router, "POST", "/contact", validForm.Encode(), formType)
		if w.Code != http.StatusSeeOther {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusSeeOther)
		}
		if loc := w.Header().Get("Location"); loc != "/contact?submitted=1" {
			t.Errorf("Location = %q, want /contact?submitted=1", loc)
		}

		entries := logs.FilterMessage("contact form submitted").All()
		if len(entries) != 1 {
			t.Fatalf("logged %d submissions, want 1", len(entries))
		}
		if got := entries[0].ContextMap()["subject"]; got != "Ventilator quote" {
			t.Errorf("logged subject = %v", got)
		}
	})

	t.Run("confirmation after redirect", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/contact?submitted=1", "", "")
		if !strings.Contains(w.Body.String(), "Thank you for your message") {
			t.Error("confirmation not shown")
		}
	})

	t.Run("re-renders with missing fields", func(t *testing.T) {
		router, logs := setupTestRouter(t)

		form := url.Values{"name": {"Dr. Jane Doe"}, "subject": {"Hello"}}
		w := do(router, "POST", "/contact", form.Encode(), formType)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Please fill in: email, message") {
			t.Error("missing field notice not shown")
		}
		if !strings.Contains(body, `value="Dr. Jane Doe"`) {
			t.Error("entered values should be kept")
		}
		if logs.FilterMessage("contact form submitted").Len() != 0 {
			t.Error("invalid form must not reach the sink")
		}
	})

	t.Run("rate limited per client", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		cfg := testConfig()
		for i := 0; i < cfg.RateLimit.Burst; i++ {
			w := do(router, "POST", "/contact", validForm.Encode(), formType)
			if w.Code != http.StatusSeeOther {
				t.Fatalf("request %d: Status = %d, want %d", i, w.Code, http.StatusSeeOther)
			}
		}

		w := do(router, "POST", "/contact", validForm.Encode(), formType)
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusTooManyRequests)
		}
	})
}

func TestContactRateLimitClientIdentity(t *testing.T) {
	payload := `{"name":"Dr. Jane Doe","email":"jane@hospital.org","subject":"Quote","message":"Hello"}`

	send := func(router *gin.Engine, forwardedFor string) int {
		req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.9:40000"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("forwarded header from an untrusted peer is ignored", func(t *testing.T) {
		router, _ := setupTestRouter(t)
		burst := testConfig().RateLimit.Burst

		var codes []int
		for i := 0; i < 10; i++ {
			codes = append(codes, send(router, "10.0.0."+strconv.Itoa(i)))
		}

		for i, code := range codes {
			want := http.StatusAccepted
			if i >= burst {
				want = http.StatusTooManyRequests
			}
			if code != want {
				t.Errorf("request %d: Status = %d, want %d (codes %v)", i, code, want, codes)
			}
		}
	})

	t.Run("forwarded header from a trusted proxy names the client", func(t *testing.T) {
		cfg := testConfig()
		cfg.Server.TrustedProxies = []string{"203.0.113.0/24"}
		router, _ := setupTestRouterWithConfig(t, cfg)

		for i := 0; i < 10; i++ {
			if code := send(router, "10.0.0."+strconv.Itoa(i)); code != http.StatusAccepted {
				t.Errorf("client 10.0.0.%d: Status = %d, want %d", i, code, http.StatusAccepted)
			}
		}

		for i := 0; i < cfg.RateLimit.Burst; i++ {
			send(router, "10.0.0.100")
		}
		if code := send(router, "10.0.0.100"); code != http.StatusTooManyRequests {
			t.Errorf("repeated client: Status = %d, want %d", code, http.StatusTooManyRequests)
		}
	})

	t.Run("html form uses the same identity", func(t *testing.T) {
		router, _ := setupTestRouter(t)
		form := url.Values{
			"name":    {"Dr. Jane Doe"},
			"email":   {"jane@hospital.org"},
			"subject": {"Quote"},
			"message": {"Hello"},
		}

		var last int
		for i := 0; i <= testConfig().RateLimit.Burst; i++ {
			req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.RemoteAddr = "203.0.113.9:40000"
			req.Header.Set("X-Forwarded-For", "192.168.1."+strconv.Itoa(i))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			last = w.Code
		}
		if last != http.StatusTooManyRequests {
			t.Errorf("Status = %d, want %d after burst", last, http.StatusTooManyRequests)
		}
	})
}

func TestSetupRouter_RejectsInvalidTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.Server.TrustedProxies = []string{"not-an-ip"}

	handler := NewHandler(
		usecase.NewCatalogService(registry.NewStatic(), nil, nil, usecase.CatalogServiceConfig{}),
		usecase.NewContactService(sink.NewLogSink(zap.NewNop())),
		nil,
	)
	if _, err := SetupRouter(cfg, handler); err == nil {
		t.Error("SetupRouter() error = nil, want error for invalid trusted proxy")
	}
}

func TestProductsAPI(t *testing.T) {
	t.Run("lists all products by default", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/api/v1/products", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var resp ListProductsResponse
		decodeJSON(t, w, &resp)
		if resp.Count != 6 || len(resp.Products) != 6 {
			t.Errorf("count = %d (%d products), want 6", resp.Count, len(resp.Products))
		}
		if resp.Category != domain.AllCategories || resp.Query != "" {
			t.Errorf("echoed state = %q/%q, want All/\"\"", resp.Category, resp.Query)
		}
	})

	t.Run("filters by category and query", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/api/v1/products?category=Imaging", "", "")
		var resp ListProductsResponse
		decodeJSON(t, w, &resp)
		if resp.Count != 2 || resp.Products[0].Name != "Digital X-Ray System" || resp.Products[1].Name != "Ultrasound Machine" {
			t.Errorf("products = %+v", resp.Products)
		}

		w = do(router, "GET", "/api/v1/products?q=ULTRA", "", "")
		decodeJSON(t, w, &resp)
		if resp.Count != 1 || resp.Products[0].ID != 3 {
			t.Errorf("products = %+v", resp.Products)
		}
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/api/v1/products?q=zzz", "", "")
		if !strings.Contains(w.Body.String(), `"products":[]`) {
			t.Errorf("body = %s, want empty products array", w.Body.String())
		}
	})

	t.Run("query whitespace is preserved", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "GET", "/api/v1/products?q=%20pump", "", "")
		var resp ListProductsResponse
		decodeJSON(t, w, &resp)
		if resp.Query != " pump" || resp.Count != 1 {
			t.Errorf("query = %q count = %d, want \" pump\" and 1", resp.Query, resp.Count)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		tests := []struct {
			path       string
			wantStatus int
		}{
			{"/api/v1/products/3", http.StatusOK},
			{"/api/v1/products/99", http.StatusNotFound},
			{"/api/v1/products/abc", http.StatusBadRequest},
		}
		for _, tt := range tests {
			w := do(router, "GET", tt.path, "", "")
			if w.Code != tt.wantStatus {
				t.Errorf("%s: Status = %d, want %d", tt.path, w.Code, tt.wantStatus)
			}
		}

		var product domain.ProductRecord
		decodeJSON(t, do(router, "GET", "/api/v1/products/3", "", ""), &product)
		if product.Name != "Ultrasound Machine" {
			t.Errorf("name = %q, want Ultrasound Machine", product.Name)
		}
	})
}

func TestCategoriesAPI(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := do(router, "GET", "/api/v1/categories", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var report domain.CategoryReport
	decodeJSON(t, w, &report)
	if len(report.UnmatchedLabels) != 1 || report.UnmatchedLabels[0] != "OT" {
		t.Errorf("unmatchedLabels = %v, want [OT]", report.UnmatchedLabels)
	}
	if len(report.UnreachableCategories) != 1 || report.UnreachableCategories[0] != "Imaging" {
		t.Errorf("unreachableCategories = %v, want [Imaging]", report.UnreachableCategories)
	}
}

func TestContactAPI(t *testing.T) {
	t.Run("accepts a complete inquiry", func(t *testing.T) {
		router, logs := setupTestRouter(t)

		payload := `{"name":"Dr. Jane Doe","email":"jane@hospital.org","subject":"Quote","message":"Hello"}`
		w := do(router, "POST", "/api/v1/contact", payload, "application/json")
		if w.Code != http.StatusAccepted {
			t.Fatalf("Status = %d, want %d: %s", w.Code, http.StatusAccepted, w.Body.String())
		}

		var resp map[string]string
		decodeJSON(t, w, &resp)
		if resp["status"] != "received" {
			t.Errorf("status = %q, want received", resp["status"])
		}
		if _, err := uuid.Parse(resp["id"]); err != nil {
			t.Errorf("id %q is not a uuid: %v", resp["id"], err)
		}
		if logs.FilterMessage("contact form submitted").Len() != 1 {
			t.Error("inquiry was not logged")
		}
	})

	t.Run("lists missing fields", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "POST", "/api/v1/contact", `{"name":"Dr. Jane Doe","subject":"Quote"}`, "application/json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}

		var resp struct {
			Error  string   `json:"error"`
			Fields []string `json:"fields"`
		}
		decodeJSON(t, w, &resp)
		if strings.Join(resp.Fields, ",") != "email,message" {
			t.Errorf("fields = %v, want [email message]", resp.Fields)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := do(router, "POST", "/api/v1/contact", `{"name":`, "application/json")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := do(router, "GET", "/api/v1/unknown", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("API 404 Content-Type = %q", ct)
	}

	w = do(router, "GET", "/no-such-page", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Page not found") {
		t.Error("HTML 404 page not rendered")
	}
}

func TestStaticAssets(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/assets/css/site.css", "/assets/images/placeholder.svg"} {
		w := do(router, "GET", path, "", "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: Status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

// TestCORSIntegration tests CORS headers work end-to-end with full router
func TestCORSIntegration(t *testing.T) {
	t.Run("health endpoint has CORS for extension origins", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "chrome-extension://abcdefghijklmnop")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if gotOrigin := w.Header().Get("Access-Control-Allow-Origin"); gotOrigin != "chrome-extension://abcdefghijklmnop" {
			t.Errorf("Access-Control-Allow-Origin = %q", gotOrigin)
		}
		if gotCreds := w.Header().Get("Access-Control-Allow-Credentials"); gotCreds != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q, want %q", gotCreds, "true")
		}
	})

	t.Run("products API has CORS for localhost", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		req := httptest.NewRequest("GET", "/api/v1/products", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if gotOrigin := w.Header().Get("Access-Control-Allow-Origin"); gotOrigin != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", gotOrigin, "http://localhost:3000")
		}
	})
}

func TestRequestID(t *testing.T) {
	router, logs := setupTestRouter(t)

	w := do(router, "GET", "/health", "", "")
	generated := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("generated request id %q is not a uuid", generated)
	}

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}

	entries := logs.FilterMessage("request").FilterField(zap.String("request_id", "abc-123")).All()
	if len(entries) != 1 {
		t.Errorf("request log entries with id = %d, want 1", len(entries))
	}
}

// TestRecoveryMiddleware tests panic recovery
func TestRecoveryMiddleware(t *testing.T) {
	t.Run("recovers from panic without crashing server", func(t *testing.T) {
		router, logs := setupTestRouter(t)

		// Add a test route that panics
		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		w := do(router, "GET", "/panic", "", "")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
		if logs.FilterMessage("panic recovered").Len() != 1 {
			t.Error("panic was not logged")
		}
	})
}

// TestJSONResponses tests that API responses are valid JSON
func TestJSONResponses(t *testing.T) {
	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/api/v1/products"},
		{"GET", "/api/v1/products/1"},
		{"GET", "/api/v1/categories"},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.method+" "+endpoint.path, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			w := do(router, endpoint.method, endpoint.path, "", "")

			gotContentType := w.Header().Get("Content-Type")
			wantContentType := "application/json; charset=utf-8"
			if gotContentType != wantContentType {
				t.Errorf("Content-Type = %q, want %q", gotContentType, wantContentType)
			}

			var response map[string]interface{}
			decodeJSON(t, w, &response)
		})
	}
}
