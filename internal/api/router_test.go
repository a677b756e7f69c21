package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"food-rescue-dashboard/internal/adapters/memory"
	"food-rescue-dashboard/internal/adapters/workbook"
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/services"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter(maxUpload int64) (http.Handler, *memory.Store) {
	store := memory.NewStore()
	return NewRouter(RouterDeps{
		Reader:         workbook.NewReader(maxUpload),
		Store:          store.Ports(),
		Aliases:        services.DefaultFieldAliases(),
		MaxUploadBytes: maxUpload,
	}), store
}

// withBanner prepends the report banner lines that precede the table in real exports.
func withBanner(n int, lines ...string) string {
	banner := make([]string, n)
	for i := range banner {
		banner[i] = "Food Rescue report"
	}
	return strings.Join(append(banner, lines...), "\n") + "\n"
}

func uploadRequest(t *testing.T, schema, filename, body string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if schema != "" {
		if err := mw.WriteField("schema", schema); err != nil {
			t.Fatalf("write schema field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(body)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeUpload(t *testing.T, rec *httptest.ResponseRecorder) dto.UploadResponse {
	t.Helper()
	var res dto.UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode upload response %q: %v", rec.Body.String(), err)
	}
	return res
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request id header")
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	router, _ := newTestRouter(0)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestUploadThenReconcile(t *testing.T) {
	router, _ := newTestRouter(1 << 20)

	uploads := []struct {
		schema string
		body   string
		count  int
	}{
		{
			schema: "Destination",
			body: withBanner(10,
				"Product Package Name,Product Package ID (18),Household Name,Household ID (18)",
				"Weekly box,P-1,Smith,H-1",
				"Total,,,",
			),
			count: 1,
		},
		{
			schema: "Package",
			body: withBanner(10,
				"Product Package ID (18),Product Inventory Record ID (18),Pantry Product Weight (lbs)",
				"P-1,T-1,10",
				"P-2,T-2,5",
			),
			count: 2,
		},
		{
			schema: "Transaction",
			body: withBanner(12,
				"Date,Location,Pantry Product Name,Inventory Type,Amount,Product Inventory Record ID (18)",
				"2024-01-05,Boston,Apples,Distribution,4,T-1",
			),
			count: 1,
		},
	}

	for _, u := range uploads {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, u.schema, "export.csv", u.body))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s upload: expected 200, got %d: %s", u.schema, rec.Code, rec.Body.String())
		}
		res := decodeUpload(t, rec)
		if !res.Success || res.Count == nil || *res.Count != u.count {
			t.Fatalf("%s upload: unexpected response %+v", u.schema, res)
		}
		if res.Details == nil || res.Details.ImportID == "" {
			t.Fatalf("%s upload: expected details with import id", u.schema)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reconciliation", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("reconciliation: expected 200, got %d", rec.Code)
	}

	var recon dto.ReconciliationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &recon); err != nil {
		t.Fatalf("decode reconciliation: %v", err)
	}
	if len(recon.Households) != 1 {
		t.Fatalf("expected 1 household, got %d", len(recon.Households))
	}
	h := recon.Households[0]
	if h.HouseholdID18 != "H-1" || h.TotalPoundsDelivered != 10 || h.DeliveryCount != 1 {
		t.Fatalf("unexpected household %+v", h)
	}
	if got := recon.Debug.UnmatchedProductPackageIDs; len(got) != 1 || got[0] != "P-2" {
		t.Fatalf("expected unmatched [P-2], got %v", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/imports?limit=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("imports: expected 200, got %d", rec.Code)
	}
	var imports dto.ListImportsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &imports); err != nil {
		t.Fatalf("decode imports: %v", err)
	}
	if len(imports.Imports) != 2 {
		t.Fatalf("expected 2 imports, got %d", len(imports.Imports))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/inventory", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", rec.Code)
	}
	var stats dto.InventoryStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if len(stats.ByLocation) != 1 || stats.ByLocation[0].Location != "Boston" {
		t.Fatalf("unexpected locations %+v", stats.ByLocation)
	}
}

func TestUploadFailures(t *testing.T) {
	tests := []struct {
		name     string
		max      int64
		schema   string
		filename string
		body     string
		status   int
		details  bool
	}{
		{
			name:     "unknown schema",
			schema:   "Households",
			filename: "a.csv",
			body:     "a,b\n1,2\n",
			status:   http.StatusBadRequest,
		},
		{
			name:   "missing file",
			schema: "Package",
			status: http.StatusBadRequest,
		},
		{
			name:     "empty file",
			schema:   "Package",
			filename: "a.csv",
			body:     "  \n",
			status:   http.StatusBadRequest,
		},
		{
			name:     "no valid rows",
			schema:   "Package",
			filename: "a.csv",
			body: withBanner(10,
				"Product Package ID (18),Product Inventory Record ID (18)",
				"P-1,",
			),
			status:  http.StatusBadRequest,
			details: true,
		},
		{
			name:     "too large",
			max:      64,
			schema:   "Package",
			filename: "a.csv",
			body:     strings.Repeat("x", 200),
			status:   http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store := newTestRouter(tt.max)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, uploadRequest(t, tt.schema, tt.filename, tt.body))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			res := decodeUpload(t, rec)
			if res.Success || res.Error == "" {
				t.Fatalf("expected failure with message, got %+v", res)
			}
			if tt.details && (res.Details == nil || len(res.Details.MissingInventoryRecordIDRows) != 1) {
				t.Fatalf("expected missing key rows in details, got %+v", res.Details)
			}

			logs, _ := store.ListImports(context.Background(), 10)
			if len(logs) != 0 {
				t.Fatalf("failed uploads must not be logged, got %d", len(logs))
			}
		})
	}
}

func TestImportsRejectsBadLimit(t *testing.T) {
	router, _ := newTestRouter(0)

	for _, q := range []string{"0", "201", "abc"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/imports?limit="+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestUploadsRequirePost(t *testing.T) {
	router, _ := newTestRouter(0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/uploads", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

type unavailableDestinations struct{}

func (unavailableDestinations) InsertDestinations(context.Context, []domain.ProductPackageDestination) (int, error) {
	return 0, errors.New("connection refused")
}

func (unavailableDestinations) ListDestinations(context.Context) ([]domain.ProductPackageDestination, error) {
	return nil, errors.New("connection refused")
}

func TestReconciliationFailureKeepsResponseShape(t *testing.T) {
	store := memory.NewStore().Ports()
	store.Destinations = unavailableDestinations{}
	router := NewRouter(RouterDeps{
		Reader:  workbook.NewReader(0),
		Store:   store,
		Aliases: services.DefaultFieldAliases(),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reconciliation", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	for _, key := range []string{"households", "debug", "error"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("expected %q in failure body, got %s", key, rec.Body.String())
		}
	}
	if string(body["households"]) != "[]" {
		t.Fatalf("expected empty households, got %s", body["households"])
	}

	var res dto.ReconciliationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Error == "" || res.Debug.UnmatchedProductPackageIDs == nil {
		t.Fatalf("unexpected failure response %+v", res)
	}
}
