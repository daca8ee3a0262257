package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type fakeInvoiceService struct {
	createCalls     int
	createErr       error
	transitionCalls int
	transitionErr   error
	lastTransition  invoicedomain.TransitionRequest
	invoice         invoicedomain.Invoice
}

func (f *fakeInvoiceService) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	f.createCalls++
	_ = ctx
	_ = req
	if f.createErr != nil {
		return invoicedomain.Invoice{}, f.createErr
	}
	return f.invoice, nil
}

func (f *fakeInvoiceService) List(ctx context.Context, req invoicedomain.ListInvoiceRequest) (invoicedomain.ListInvoiceResponse, error) {
	_ = ctx
	_ = req
	return invoicedomain.ListInvoiceResponse{}, nil
}

func (f *fakeInvoiceService) GetByID(ctx context.Context, id string) (invoicedomain.InvoiceWithCustomer, error) {
	_ = ctx
	_ = id
	return invoicedomain.InvoiceWithCustomer{Invoice: f.invoice}, nil
}

func (f *fakeInvoiceService) Transition(ctx context.Context, req invoicedomain.TransitionRequest) (invoicedomain.Invoice, error) {
	f.transitionCalls++
	f.lastTransition = req
	_ = ctx
	if f.transitionErr != nil {
		return invoicedomain.Invoice{}, f.transitionErr
	}
	return f.invoice, nil
}

func (f *fakeInvoiceService) Stats(ctx context.Context) (invoicedomain.StatusTotals, error) {
	_ = ctx
	return invoicedomain.StatusTotals{}, nil
}

func (f *fakeInvoiceService) RenderPDF(ctx context.Context, id string) (io.Reader, error) {
	_ = ctx
	_ = id
	return bytes.NewReader([]byte("%PDF-1.7")), nil
}

func newInvoiceTestRouter(svc invoicedomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{invoiceSvc: svc}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/invoices", srv.CreateInvoice)
	router.POST("/invoices/:id/transition", srv.TransitionInvoice)
	router.GET("/invoices/:id/pdf", srv.DownloadInvoicePDF)
	return router
}

func TestCreateInvoiceHandler(t *testing.T) {
	svc := &fakeInvoiceService{
		invoice: invoicedomain.Invoice{
			ID:     snowflake.ID(42),
			Amount: decimal.RequireFromString("250.00"),
			Status: invoicedomain.StatusDraft,
		},
	}
	router := newInvoiceTestRouter(svc)

	body := `{"customer_id":"7","collection_date":"2025-03-01","waste_quantity":"100","service_type":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.createCalls != 1 {
		t.Fatalf("expected one Create call, got %d", svc.createCalls)
	}

	var payload struct {
		Data invoicedomain.Invoice `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Data.Amount.Equal(decimal.RequireFromString("250.00")) {
		t.Fatalf("expected amount 250.00, got %s", payload.Data.Amount)
	}
}

func TestCreateInvoiceHandlerRejectsBadCollectionDate(t *testing.T) {
	svc := &fakeInvoiceService{}
	router := newInvoiceTestRouter(svc)

	body := `{"customer_id":"7","collection_date":"01-03-2025","waste_quantity":"100","service_type":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if svc.createCalls != 0 {
		t.Fatal("expected service not to be called for a malformed date")
	}
}

func TestCreateInvoiceHandlerMapsValidationError(t *testing.T) {
	svc := &fakeInvoiceService{createErr: invoicedomain.ErrInvalidQuantity}
	router := newInvoiceTestRouter(svc)

	body := `{"customer_id":"7","collection_date":"2025-03-01","waste_quantity":"0","service_type":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var payload struct {
		Error errorPayload `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Type != "validation_error" {
		t.Fatalf("expected type validation_error, got %q", payload.Error.Type)
	}
	if len(payload.Error.Errors) != 1 || payload.Error.Errors[0].Code != "invalid_quantity" {
		t.Fatalf("unexpected validation errors: %+v", payload.Error.Errors)
	}
}

func TestTransitionInvoiceHandlerMapsConflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"illegal transition", invoicedomain.ErrIllegalTransition, http.StatusConflict},
		{"concurrent update", invoicedomain.ErrStatusConflict, http.StatusConflict},
		{"missing email", invoicedomain.ErrMissingCustomerEmail, http.StatusConflict},
		{"notification failure", invoicedomain.ErrNotificationFailed, http.StatusBadGateway},
		{"unknown invoice", invoicedomain.ErrNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeInvoiceService{transitionErr: tc.err}
			router := newInvoiceTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/invoices/42/transition", bytes.NewBufferString(`{"status":"sent"}`))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tc.want {
				t.Fatalf("expected status %d, got %d: %s", tc.want, resp.Code, resp.Body.String())
			}
			if svc.lastTransition.InvoiceID != "42" || svc.lastTransition.TargetStatus != "sent" {
				t.Fatalf("unexpected transition request: %+v", svc.lastTransition)
			}
		})
	}
}

func TestDownloadInvoicePDFHandler(t *testing.T) {
	router := newInvoiceTestRouter(&fakeInvoiceService{})

	req := httptest.NewRequest(http.MethodGet, "/invoices/42/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if resp.Header().Get("Content-Disposition") == "" {
		t.Fatal("expected a Content-Disposition header")
	}
}
