package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	"github.com/evabo/wasteflow/internal/payment/domain"
	supplierdomain "github.com/evabo/wasteflow/internal/supplier/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	SupplierRepo supplierdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	customerRepo customerdomain.Repository
	supplierRepo supplierdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("payment.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		supplierRepo: p.SupplierRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return domain.Payment{}, domain.ErrInvalidAmount
	}

	paymentType, ok := parseType(req.Type)
	if !ok {
		return domain.Payment{}, domain.ErrInvalidType
	}

	if req.PaymentDate.IsZero() {
		return domain.Payment{}, domain.ErrInvalidPaymentDate
	}

	// A collected payment points at a customer, a disbursed one at a
	// supplier. Exactly one party is required.
	customerID, supplierID, err := s.resolveParty(ctx, paymentType, req.CustomerID, req.SupplierID)
	if err != nil {
		return domain.Payment{}, err
	}

	var invoiceID snowflake.ID
	if raw := strings.TrimSpace(req.InvoiceID); raw != "" {
		id, parseErr := snowflake.ParseString(raw)
		if parseErr != nil || id == 0 {
			return domain.Payment{}, domain.ErrInvalidID
		}
		invoiceID = id
	}

	now := s.clock.Now()
	payment := domain.Payment{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		SupplierID:  supplierID,
		InvoiceID:   invoiceID,
		Amount:      req.Amount.Round(2),
		Type:        paymentType,
		Status:      domain.StatusPending,
		Method:      strings.TrimSpace(req.Method),
		Reference:   strings.TrimSpace(req.Reference),
		PaymentDate: truncateToDate(req.PaymentDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &payment); err != nil {
		return domain.Payment{}, err
	}

	return payment, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPaymentRequest) (domain.ListPaymentResponse, error) {
	filter := domain.ListPaymentFilter{
		CustomerID: strings.TrimSpace(req.CustomerID),
		SupplierID: strings.TrimSpace(req.SupplierID),
		Type:       strings.TrimSpace(req.Type),
		Status:     strings.TrimSpace(req.Status),
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListPaymentResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(payment *domain.Payment) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        payment.ID.String(),
			CreatedAt: payment.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	payments := make([]domain.Payment, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		payments = append(payments, *item)
	}

	resp := domain.ListPaymentResponse{Payments: payments}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetPaymentRequest) (domain.Payment, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Payment{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if item == nil {
		return domain.Payment{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePaymentRequest) (domain.Payment, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Payment{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if item == nil {
		return domain.Payment{}, domain.ErrNotFound
	}

	if req.Status != nil {
		status := domain.PaymentStatus(strings.TrimSpace(*req.Status))
		if status != domain.StatusCompleted && status != domain.StatusPending {
			return domain.Payment{}, domain.ErrInvalidStatus
		}
		item.Status = status
	}
	if req.Method != nil {
		item.Method = strings.TrimSpace(*req.Method)
	}
	if req.Reference != nil {
		item.Reference = strings.TrimSpace(*req.Reference)
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Payment{}, err
	}

	return *item, nil
}

func (s *Service) Stats(ctx context.Context) (domain.PaymentTotals, error) {
	payments, err := s.repo.ListForStats(ctx, s.db)
	if err != nil {
		return domain.PaymentTotals{}, err
	}
	return domain.ComputeTotals(payments), nil
}

func (s *Service) resolveParty(ctx context.Context, paymentType domain.PaymentType, rawCustomerID, rawSupplierID string) (snowflake.ID, snowflake.ID, error) {
	rawCustomerID = strings.TrimSpace(rawCustomerID)
	rawSupplierID = strings.TrimSpace(rawSupplierID)

	switch paymentType {
	case domain.TypeCollected:
		if rawCustomerID == "" || rawSupplierID != "" {
			return 0, 0, domain.ErrInvalidParty
		}
		id, err := snowflake.ParseString(rawCustomerID)
		if err != nil || id == 0 {
			return 0, 0, customerdomain.ErrInvalidID
		}
		customer, err := s.customerRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return 0, 0, err
		}
		if customer == nil {
			return 0, 0, customerdomain.ErrNotFound
		}
		return id, 0, nil

	case domain.TypeDisbursed:
		if rawSupplierID == "" || rawCustomerID != "" {
			return 0, 0, domain.ErrInvalidParty
		}
		id, err := snowflake.ParseString(rawSupplierID)
		if err != nil || id == 0 {
			return 0, 0, supplierdomain.ErrInvalidID
		}
		supplier, err := s.supplierRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return 0, 0, err
		}
		if supplier == nil {
			return 0, 0, supplierdomain.ErrNotFound
		}
		return 0, id, nil
	}

	return 0, 0, domain.ErrInvalidType
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func parseType(raw string) (domain.PaymentType, bool) {
	switch domain.PaymentType(strings.TrimSpace(raw)) {
	case domain.TypeCollected:
		return domain.TypeCollected, true
	case domain.TypeDisbursed:
		return domain.TypeDisbursed, true
	default:
		return "", false
	}
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
