package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thibautrey/PebbleShopApp/internal/domain/dto"
	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
	"github.com/thibautrey/PebbleShopApp/internal/service"
)

type mockSalesService struct {
	result      models.SalesTotal
	err         error
	settings    models.Settings
	settingsErr error
	updated     *models.Settings
	updateErr   error
	lastPeriod  models.Period
}

func (m *mockSalesService) GetSales(_ context.Context, p models.Period) (models.SalesTotal, error) {
	m.lastPeriod = p
	return m.result, m.err
}

func (m *mockSalesService) Settings() (models.Settings, error) {
	return m.settings, m.settingsErr
}

func (m *mockSalesService) UpdateSettings(in models.Settings) (models.Settings, error) {
	if m.updateErr != nil {
		return models.Settings{}, m.updateErr
	}
	clean := in.Normalize()
	m.updated = &clean
	return clean, nil
}

var _ service.SalesService = (*mockSalesService)(nil)

func setupRouterWithMock(s service.SalesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/sales", h.GetSales)
	v1.GET("/settings", h.GetSettings)
	v1.PUT("/settings", h.UpdateSettings)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSales_TableDriven(t *testing.T) {
	cases := []struct {
		name       string
		svc        *mockSalesService
		body       string
		wantPeriod models.Period
		assert     func(t *testing.T, msg dto.SalesMessage)
	}{
		{
			name:       "success weekly",
			svc:        &mockSalesService{result: models.SalesTotal{Total: "1542.50", Currency: "$"}},
			body:       `{"period":1}`,
			wantPeriod: models.PeriodWeekly,
			assert: func(t *testing.T, msg dto.SalesMessage) {
				if msg.Status != "ok" || msg.Total != "1542.50" || msg.Currency != "$" || msg.Period != 1 {
					t.Fatalf("unexpected message %+v", msg)
				}
			},
		},
		{
			name:       "missing body defaults to daily",
			svc:        &mockSalesService{result: models.SalesTotal{Total: "10.00", Currency: "€"}},
			body:       "",
			wantPeriod: models.PeriodDaily,
			assert: func(t *testing.T, msg dto.SalesMessage) {
				if msg.Period != 0 || msg.Status != "ok" {
					t.Fatalf("unexpected message %+v", msg)
				}
			},
		},
		{
			name:       "out of range period defaults to daily",
			svc:        &mockSalesService{result: models.SalesTotal{Total: "10.00", Currency: "€"}},
			body:       `{"period":7}`,
			wantPeriod: models.PeriodDaily,
			assert: func(t *testing.T, msg dto.SalesMessage) {
				if msg.Period != 0 {
					t.Fatalf("unexpected period %d", msg.Period)
				}
			},
		},
		{
			name:       "rate limited error outcome",
			svc:        &mockSalesService{err: errors.New("Rate limited: slow down")},
			body:       `{"period":2}`,
			wantPeriod: models.PeriodMonthly,
			assert: func(t *testing.T, msg dto.SalesMessage) {
				if msg.Status != "error" || msg.Period != 2 {
					t.Fatalf("unexpected message %+v", msg)
				}
				if msg.Error != "Rate limited: slow down" {
					t.Fatalf("unexpected error detail %q", msg.Error)
				}
				if msg.Total != "" || msg.Currency != "" {
					t.Fatalf("error outcome must not carry totals: %+v", msg)
				}
			},
		},
		{
			name:       "missing configuration error outcome",
			svc:        &mockSalesService{err: service.ErrMissingConfiguration},
			body:       `{"period":0}`,
			wantPeriod: models.PeriodDaily,
			assert: func(t *testing.T, msg dto.SalesMessage) {
				if msg.Status != "error" || msg.Error == "" {
					t.Fatalf("unexpected message %+v", msg)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := postJSON(t, r, "/api/v1/sales", tc.body)

			// The watch always receives a definitive 200 with in-band status.
			if w.Code != http.StatusOK {
				t.Fatalf("code=%d", w.Code)
			}
			var msg dto.SalesMessage
			if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if tc.svc.lastPeriod != tc.wantPeriod {
				t.Fatalf("service called with period %v, want %v", tc.svc.lastPeriod, tc.wantPeriod)
			}
			tc.assert(t, msg)
		})
	}
}

func TestGetSettings(t *testing.T) {
	svc := &mockSalesService{settings: models.Settings{Domain: "a.myshopify.com", Token: "shpat_x", Timezone: "+02:00"}}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}

	var resp dto.SettingsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Domain != "a.myshopify.com" || !resp.TokenSet || !resp.Configured {
		t.Fatalf("unexpected response %+v", resp)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("shpat_x")) {
		t.Fatalf("token leaked into response: %s", w.Body.String())
	}
}

func TestUpdateSettings_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockSalesService
		body   string
		status int
	}{
		{
			name:   "valid settings",
			svc:    &mockSalesService{},
			body:   `{"domain":"https://a.myshopify.com","token":"t","timezone":"+02:00"}`,
			status: http.StatusOK,
		},
		{
			name:   "malformed body",
			svc:    &mockSalesService{},
			body:   `{"domain":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "bad timezone offset",
			svc:    &mockSalesService{},
			body:   `{"domain":"a.myshopify.com","token":"t","timezone":"UTC+2"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			svc:    &mockSalesService{updateErr: errors.New("disk full")},
			body:   `{"domain":"a.myshopify.com","token":"t"}`,
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("code=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
		})
	}
}

func TestUpdateSettings_NormalizesDomain(t *testing.T) {
	svc := &mockSalesService{}
	r := setupRouterWithMock(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings",
		bytes.NewBufferString(`{"domain":"https://a.myshopify.com/","token":"t"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if svc.updated == nil || svc.updated.Domain != "a.myshopify.com" {
		t.Fatalf("domain not normalized before save: %+v", svc.updated)
	}
}
