package server

import (
	"io"
	"net/http"

	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createInvoiceRequest struct {
	CustomerID         string          `json:"customer_id"`
	CollectionDate     string          `json:"collection_date"`
	WasteQuantity      decimal.Decimal `json:"waste_quantity"`
	ServiceType        string          `json:"service_type"`
	AdditionalServices []string        `json:"additional_services"`
	Notes              string          `json:"notes"`
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	collectionDate, err := parseRequiredDate(req.CollectionDate, "collection_date")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		CustomerID:         req.CustomerID,
		CollectionDate:     collectionDate,
		WasteQuantity:      req.WasteQuantity,
		ServiceType:        req.ServiceType,
		AdditionalServices: req.AdditionalServices,
		Notes:              req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListInvoiceRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Status:    query.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type transitionInvoiceRequest struct {
	Status string `json:"status"`
}

func (s *Server) TransitionInvoice(c *gin.Context) {
	var req transitionInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Transition(c.Request.Context(), invoicedomain.TransitionRequest{
		InvoiceID:    c.Param("id"),
		TargetStatus: req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) InvoiceStats(c *gin.Context) {
	resp, err := s.invoiceSvc.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	reader, err := s.invoiceSvc.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func isInvoiceValidationError(err error) bool {
	switch err {
	case invoicedomain.ErrInvalidID,
		invoicedomain.ErrInvalidCustomerID,
		invoicedomain.ErrInvalidQuantity,
		invoicedomain.ErrInvalidServiceType,
		invoicedomain.ErrInvalidStatus,
		invoicedomain.ErrInvalidCollectionDate:
		return true
	default:
		return false
	}
}
