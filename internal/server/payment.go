package server

import (
	"net/http"

	paymentdomain "github.com/evabo/wasteflow/internal/payment/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createPaymentRequest struct {
	CustomerID  string          `json:"customer_id"`
	SupplierID  string          `json:"supplier_id"`
	InvoiceID   string          `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	PaymentDate string          `json:"payment_date"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paymentDate, err := parseRequiredDate(req.PaymentDate, "payment_date")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.paymentSvc.Create(c.Request.Context(), paymentdomain.CreatePaymentRequest{
		CustomerID:  req.CustomerID,
		SupplierID:  req.SupplierID,
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		Type:        req.Type,
		Method:      req.Method,
		Reference:   req.Reference,
		PaymentDate: paymentDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CustomerID string `form:"customer_id"`
		SupplierID string `form:"supplier_id"`
		Type       string `form:"type"`
		Status     string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.List(c.Request.Context(), paymentdomain.ListPaymentRequest{
		PageToken:  query.PageToken,
		PageSize:   int32(query.PageSize),
		CustomerID: query.CustomerID,
		SupplierID: query.SupplierID,
		Type:       query.Type,
		Status:     query.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPaymentByID(c *gin.Context) {
	resp, err := s.paymentSvc.GetByID(c.Request.Context(), paymentdomain.GetPaymentRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updatePaymentRequest struct {
	Status    *string `json:"status"`
	Method    *string `json:"method"`
	Reference *string `json:"reference"`
}

func (s *Server) UpdatePayment(c *gin.Context) {
	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.Update(c.Request.Context(), paymentdomain.UpdatePaymentRequest{
		ID:        c.Param("id"),
		Status:    req.Status,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) PaymentStats(c *gin.Context) {
	resp, err := s.paymentSvc.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isPaymentValidationError(err error) bool {
	switch err {
	case paymentdomain.ErrInvalidAmount,
		paymentdomain.ErrInvalidType,
		paymentdomain.ErrInvalidStatus,
		paymentdomain.ErrInvalidParty,
		paymentdomain.ErrInvalidPaymentDate,
		paymentdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
