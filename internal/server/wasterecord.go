package server

import (
	"net/http"

	wasterecorddomain "github.com/evabo/wasteflow/internal/wasterecord/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createWasteRecordRequest struct {
	SupplierID string          `json:"supplier_id"`
	WasteType  string          `json:"waste_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Location   string          `json:"location"`
	RecordDate string          `json:"record_date"`
}

func (s *Server) CreateWasteRecord(c *gin.Context) {
	var req createWasteRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	recordDate, err := parseRequiredDate(req.RecordDate, "record_date")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.wasteRecordSvc.Create(c.Request.Context(), wasterecorddomain.CreateWasteRecordRequest{
		SupplierID: req.SupplierID,
		WasteType:  req.WasteType,
		Quantity:   req.Quantity,
		Location:   req.Location,
		RecordDate: recordDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWasteRecords(c *gin.Context) {
	var query struct {
		pagination.Pagination
		SupplierID string `form:"supplier_id"`
		WasteType  string `form:"waste_type"`
		Status     string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.wasteRecordSvc.List(c.Request.Context(), wasterecorddomain.ListWasteRecordRequest{
		PageToken:  query.PageToken,
		PageSize:   int32(query.PageSize),
		SupplierID: query.SupplierID,
		WasteType:  query.WasteType,
		Status:     query.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWasteRecordByID(c *gin.Context) {
	resp, err := s.wasteRecordSvc.GetByID(c.Request.Context(), wasterecorddomain.GetWasteRecordRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateWasteRecordRequest struct {
	WasteType *string          `json:"waste_type"`
	Quantity  *decimal.Decimal `json:"quantity"`
	Location  *string          `json:"location"`
	Status    *string          `json:"status"`
}

func (s *Server) UpdateWasteRecord(c *gin.Context) {
	var req updateWasteRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.wasteRecordSvc.Update(c.Request.Context(), wasterecorddomain.UpdateWasteRecordRequest{
		ID:        c.Param("id"),
		WasteType: req.WasteType,
		Quantity:  req.Quantity,
		Location:  req.Location,
		Status:    req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteWasteRecord(c *gin.Context) {
	if err := s.wasteRecordSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isWasteRecordValidationError(err error) bool {
	switch err {
	case wasterecorddomain.ErrInvalidWasteType,
		wasterecorddomain.ErrInvalidQuantity,
		wasterecorddomain.ErrInvalidStatus,
		wasterecorddomain.ErrInvalidRecordDate,
		wasterecorddomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
