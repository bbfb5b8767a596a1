package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aaprotein/farmdesk/internal/server/handlers"
	"github.com/aaprotein/farmdesk/internal/server/router"
	"github.com/aaprotein/farmdesk/internal/service/metrics"
	"github.com/aaprotein/farmdesk/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 7, 27, 12, 0, 0, 0, time.UTC) }
	st := store.New(nil, store.WithClock(clock))
	st.Seed()
	engine := metrics.NewEngine(st, decimal.NewFromInt(50000), nil, metrics.WithClock(clock))
	return router.New(handlers.New(st, engine, nil), nil), st
}

func doJSON(t *testing.T, r http.Handler, method, path, role, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Role", role)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddMortalityReportEndpoint(t *testing.T) {
	r, st := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/reports/mortality", "Worker",
		`{"date":"2024-07-28","flockId":"h1","nightMortality":2,"hospitalMortality":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}

	flock, _ := st.FlockByID("h1")
	if flock.CurrentBirdCount != 4847 {
		t.Errorf("CurrentBirdCount = %d, want 4847", flock.CurrentBirdCount)
	}
}

func TestRoleGate(t *testing.T) {
	r, _ := newTestServer(t)
	body := `{"date":"2024-07-28","flockId":"h1","nightMortality":1}`

	if w := doJSON(t, r, http.MethodPost, "/api/reports/mortality", "Security Guard", body); w.Code != http.StatusForbidden {
		t.Errorf("guard posting mortality: status = %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/reports/mortality", "", body); w.Code != http.StatusBadRequest {
		t.Errorf("missing role: status = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/reports/mortality", "Intern", body); w.Code != http.StatusBadRequest {
		t.Errorf("unknown role: status = %d, want 400", w.Code)
	}

	// Inventory now runs through the same table: accountants are out.
	inv := `{"name":"Gloves","category":"Other","unit":"units","stock":5,"lowStockThreshold":2}`
	if w := doJSON(t, r, http.MethodPost, "/api/inventory", "Accountant", inv); w.Code != http.StatusForbidden {
		t.Errorf("accountant adding inventory: status = %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/inventory", "Manager", inv); w.Code != http.StatusCreated {
		t.Errorf("manager adding inventory: status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestUnknownFlockReturns404(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/reports/feed", "Worker",
		`{"date":"2024-07-28","flockId":"h99","feedConsumedPerBird":110}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestAddFinanceTransactionEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/finance/transactions", "Accountant",
		`{"date":"2024-07-27","voucherNo":"IN-002","type":"Inward","sourceOrExpenseType":"Egg Sales","amount":"15000"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	balances := doJSON(t, r, http.MethodGet, "/api/finance/balances", "", "")
	var resp struct {
		Closing decimal.Decimal `json:"closing"`
	}
	if err := json.Unmarshal(balances.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode balances: %v", err)
	}
	// 50000 opening + (55000 + 15000) inward - 125000 outward.
	if !resp.Closing.Equal(decimal.NewFromInt(-5000)) {
		t.Errorf("closing = %s, want -5000", resp.Closing)
	}
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/summary", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Summary struct {
			TotalBirds    int `json:"totalBirds"`
			EggsCollected int `json:"eggsCollected"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if resp.Summary.TotalBirds != 14710 {
		t.Errorf("totalBirds = %d, want 14710", resp.Summary.TotalBirds)
	}
	if resp.Summary.EggsCollected != 5868 {
		t.Errorf("eggsCollected = %d, want 5868", resp.Summary.EggsCollected)
	}
}

func TestDateBoundedListing(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports/feed?start=2024-07-27&end=2024-07-27", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var reports []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &reports); err != nil {
		t.Fatalf("decode reports: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("reports = %d, want 2", len(reports))
	}

	if w := doJSON(t, r, http.MethodGet, "/api/reports/feed?start=2024-07-27", "", ""); w.Code != http.StatusBadRequest {
		t.Errorf("half-open range: status = %d, want 400", w.Code)
	}
}

func TestRolePagesEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/roles/Worker/pages", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Pages       []string `json:"pages"`
		DefaultPage string   `json:"defaultPage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode pages: %v", err)
	}
	if len(resp.Pages) != 3 {
		t.Errorf("pages = %v, want 3 entries", resp.Pages)
	}
	if resp.DefaultPage != "Daily Feed & Water" {
		t.Errorf("defaultPage = %q, want Daily Feed & Water", resp.DefaultPage)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/roles/Astronaut/pages", "", ""); w.Code != http.StatusBadRequest {
		t.Errorf("unknown role: status = %d, want 400", w.Code)
	}
}
