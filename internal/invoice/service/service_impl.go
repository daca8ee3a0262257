package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/billing"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/config"
	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	"github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/evabo/wasteflow/internal/invoice/format"
	"github.com/evabo/wasteflow/internal/providers/pdf"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// dueDateOffsetDays fixes the payment term: due = collection + 30 days.
const dueDateOffsetDays = 30

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Cfg          config.Config
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	Notifier     domain.Notifier
	PDF          pdf.Provider
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	companyName  string
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	customerRepo customerdomain.Repository
	notifier     domain.Notifier
	pdf          pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("invoice.service"),
		companyName:  p.Cfg.CompanyName,
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		notifier:     p.Notifier,
		pdf:          p.PDF,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.Invoice{}, domain.ErrInvalidCustomerID
	}

	if req.WasteQuantity.IsNegative() {
		return domain.Invoice{}, domain.ErrInvalidQuantity
	}

	tier := strings.TrimSpace(req.ServiceType)
	if !billing.ValidTier(tier) {
		return domain.Invoice{}, domain.ErrInvalidServiceType
	}

	if req.CollectionDate.IsZero() {
		return domain.Invoice{}, domain.ErrInvalidCollectionDate
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if customer == nil {
		return domain.Invoice{}, customerdomain.ErrNotFound
	}

	services := normalizeServices(req.AdditionalServices)

	// Amount is computed exactly once here and never recomputed, no matter
	// how the status changes later.
	amount := billing.Amount(string(customer.Type), req.WasteQuantity, tier, services)

	now := s.clock.Now()
	collectionDate := truncateToDate(req.CollectionDate)
	invoice := domain.Invoice{
		ID:                 s.genID.Generate(),
		CustomerID:         customerID,
		Amount:             amount,
		Status:             domain.StatusDraft,
		InvoiceDate:        truncateToDate(now),
		DueDate:            collectionDate.AddDate(0, 0, dueDateOffsetDays),
		CollectionDate:     collectionDate,
		WasteQuantity:      req.WasteQuantity,
		ServiceType:        tier,
		AdditionalServices: datatypes.NewJSONSlice(services),
		Notes:              strings.TrimSpace(req.Notes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("amount", amount.StringFixed(2)),
	)

	return invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) (domain.ListInvoiceResponse, error) {
	filter := domain.ListInvoiceFilter{}
	if raw := strings.TrimSpace(req.Status); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			return domain.ListInvoiceResponse{}, domain.ErrInvalidStatus
		}
		filter.Status = status
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
		return domain.ListInvoiceResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(invoice *domain.Invoice) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        invoice.ID.String(),
			CreatedAt: invoice.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	customers, err := s.loadCustomers(ctx, items)
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}

	invoices := make([]domain.InvoiceWithCustomer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, domain.InvoiceWithCustomer{
			Invoice:  *item,
			Customer: customers[item.CustomerID],
		})
	}

	resp := domain.ListInvoiceResponse{Invoices: invoices}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.InvoiceWithCustomer, error) {
	invoice, err := s.load(ctx, rawID)
	if err != nil {
		return domain.InvoiceWithCustomer{}, err
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, invoice.CustomerID)
	if err != nil {
		return domain.InvoiceWithCustomer{}, err
	}

	out := domain.InvoiceWithCustomer{Invoice: *invoice}
	if customer != nil {
		out.Customer = *customer
	}
	return out, nil
}

func (s *Service) Transition(ctx context.Context, req domain.TransitionRequest) (domain.Invoice, error) {
	target, ok := domain.ParseStatus(strings.TrimSpace(req.TargetStatus))
	if !ok {
		return domain.Invoice{}, domain.ErrInvalidStatus
	}

	invoice, err := s.load(ctx, req.InvoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}

	tr, err := domain.NextTransition(invoice.Status, target)
	if err != nil {
		return domain.Invoice{}, err
	}

	if tr.Notify {
		customer, err := s.customerRepo.FindByID(ctx, s.db, invoice.CustomerID)
		if err != nil {
			return domain.Invoice{}, err
		}
		if customer == nil {
			return domain.Invoice{}, customerdomain.ErrNotFound
		}
		if strings.TrimSpace(customer.Email) == "" {
			return domain.Invoice{}, domain.ErrMissingCustomerEmail
		}

		// The notification must succeed before the status change is
		// persisted; on failure the invoice stays where it was.
		if err := s.notifier.SendInvoice(ctx, *invoice, customer.Name, customer.Email); err != nil {
			s.log.Warn("invoice notification failed",
				zap.String("invoice_id", invoice.ID.String()),
				zap.Error(err),
			)
			return domain.Invoice{}, fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
		}
	}

	now := s.clock.Now()
	updated, err := s.repo.UpdateStatus(ctx, s.db, invoice.ID, invoice.Status, target, now)
	if err != nil {
		return domain.Invoice{}, err
	}
	if !updated {
		// A concurrent writer changed the status between load and update.
		return domain.Invoice{}, domain.ErrStatusConflict
	}

	invoice.Status = target
	invoice.UpdatedAt = now

	s.log.Info("invoice status changed",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("from", string(tr.From)),
		zap.String("to", string(tr.To)),
	)

	return *invoice, nil
}

func (s *Service) Stats(ctx context.Context) (domain.StatusTotals, error) {
	invoices, err := s.repo.ListForStats(ctx, s.db)
	if err != nil {
		return domain.StatusTotals{}, err
	}
	return domain.ComputeStats(invoices), nil
}

func (s *Service) RenderPDF(ctx context.Context, rawID string) (io.Reader, error) {
	item, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	return s.pdf.GenerateInvoice(ctx, pdf.InvoiceData{
		CompanyName:        s.companyName,
		InvoiceNumber:      format.InvoiceNumber(string(item.Status), item.ID.String(), item.InvoiceDate),
		IssueDate:          item.InvoiceDate.Format("2006-01-02"),
		DueDate:            item.DueDate.Format("2006-01-02"),
		CollectionOn:       item.CollectionDate.Format("2006-01-02"),
		BillToName:         item.Customer.Name,
		BillToContact:      item.Customer.ContactPerson,
		BillToEmail:        item.Customer.Email,
		BillToLocation:     item.Customer.Location,
		ServiceType:        item.ServiceType,
		WasteQuantity:      item.WasteQuantity.String(),
		AdditionalServices: item.AdditionalServices,
		Notes:              item.Notes,
		AmountDue:          item.Amount.StringFixed(2),
	})
}

func (s *Service) load(ctx context.Context, rawID string) (*domain.Invoice, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}

	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func (s *Service) loadCustomers(ctx context.Context, invoices []*domain.Invoice) (map[snowflake.ID]customerdomain.Customer, error) {
	seen := make(map[snowflake.ID]bool, len(invoices))
	ids := make([]snowflake.ID, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice == nil || seen[invoice.CustomerID] {
			continue
		}
		seen[invoice.CustomerID] = true
		ids = append(ids, invoice.CustomerID)
	}

	customers, err := s.customerRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[snowflake.ID]customerdomain.Customer, len(customers))
	for _, customer := range customers {
		if customer == nil {
			continue
		}
		out[customer.ID] = *customer
	}
	return out, nil
}

func normalizeServices(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, code := range raw {
		code = strings.TrimSpace(code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
