package credit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"joyit/internal/domain"
)

type fakeTopUpInitiator struct {
	calls int
}

func (f *fakeTopUpInitiator) InitTopUp(_ context.Context, companyID, credits int64) (string, int64, error) {
	f.calls++
	return fmt.Sprintf("https://gateway.example/pay?company=%d&credits=%d", companyID, credits), 12345, nil
}

func setupTestRouter(t *testing.T) (*gin.Engine, *Service, int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:credit_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Company{}, &domain.CreditEntry{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	company := domain.Company{Name: "Test Co", ContactEmail: "co@test.example"}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	svc := NewService(db)
	h := NewHandler(svc, &fakeTopUpInitiator{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-Company-ID") != "" {
			c.Set("company_id", company.ID)
		}
		c.Next()
	})

	v1 := r.Group("/api/v1")
	h.RegisterRoutes(v1)
	h.RegisterAdminRoutes(v1.Group("/admin"))
	return r, svc, company.ID
}

func doJSONRequest(r http.Handler, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("X-Test-Company-ID", "1")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestCreditEndpoints_Unauthorized(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{method: http.MethodGet, path: "/api/v1/credit"},
		{method: http.MethodGet, path: "/api/v1/credit/ledger"},
		{method: http.MethodPost, path: "/api/v1/credit/topup", body: map[string]any{"credits": 10}},
	}

	for _, tc := range cases {
		rr := doJSONRequest(r, tc.method, tc.path, tc.body, false)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s %s, got %d", tc.method, tc.path, rr.Code)
		}
	}
}

func TestCreditEndpoints_FullFlow(t *testing.T) {
	r, _, companyID := setupTestRouter(t)

	// initial balance is zero
	rr := doJSONRequest(r, http.MethodGet, "/api/v1/credit", nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for get balance, got %d body=%s", rr.Code, rr.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil || !env.Success {
		t.Fatalf("invalid balance response: %s", rr.Body.String())
	}
	var balanceResp struct {
		Balance int64 `json:"balance"`
	}
	if err := json.Unmarshal(env.Data, &balanceResp); err != nil {
		t.Fatalf("invalid balance payload: %v", err)
	}
	if balanceResp.Balance != 0 {
		t.Fatalf("expected initial balance 0, got %d", balanceResp.Balance)
	}

	// admin grant
	rr = doJSONRequest(r, http.MethodPost, "/api/v1/admin/credit/grant",
		map[string]any{"company_id": companyID, "amount": 250, "note": "welcome"}, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for grant, got %d body=%s", rr.Code, rr.Body.String())
	}

	// invalid grant amount
	rr = doJSONRequest(r, http.MethodPost, "/api/v1/admin/credit/grant",
		map[string]any{"company_id": companyID, "amount": -5}, true)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid grant, got %d body=%s", rr.Code, rr.Body.String())
	}

	// top-up returns a checkout URL without moving credit yet
	rr = doJSONRequest(r, http.MethodPost, "/api/v1/credit/topup", map[string]any{"credits": 100}, true)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for topup, got %d body=%s", rr.Code, rr.Body.String())
	}
	env = envelope{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid topup response: %v", err)
	}
	var topupResp struct {
		CheckoutURL string `json:"checkout_url"`
		InvID       int64  `json:"inv_id"`
	}
	if err := json.Unmarshal(env.Data, &topupResp); err != nil {
		t.Fatalf("invalid topup payload: %v", err)
	}
	if topupResp.CheckoutURL == "" || topupResp.InvID == 0 {
		t.Fatalf("expected checkout url and inv id, got %+v", topupResp)
	}

	// ledger has exactly the grant entry
	rr = doJSONRequest(r, http.MethodGet, "/api/v1/credit/ledger", nil, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for ledger, got %d body=%s", rr.Code, rr.Body.String())
	}
	env = envelope{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid ledger response: %v", err)
	}
	var ledgerResp struct {
		Entries []map[string]any `json:"entries"`
	}
	if err := json.Unmarshal(env.Data, &ledgerResp); err != nil {
		t.Fatalf("invalid ledger payload: %v", err)
	}
	if len(ledgerResp.Entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(ledgerResp.Entries))
	}

	// final balance reflects only the grant
	rr = doJSONRequest(r, http.MethodGet, "/api/v1/credit", nil, true)
	env = envelope{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid final balance response: %v", err)
	}
	if err := json.Unmarshal(env.Data, &balanceResp); err != nil {
		t.Fatalf("invalid final balance payload: %v", err)
	}
	if balanceResp.Balance != 250 {
		t.Fatalf("expected final balance 250, got %d", balanceResp.Balance)
	}
}
