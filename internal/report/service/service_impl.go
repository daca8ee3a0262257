package service

import (
	"context"

	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/evabo/wasteflow/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultActivityLimit = 20

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	InvoiceRepo invoicedomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	invoiceRepo invoicedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("report.service"),
		repo:        p.Repo,
		invoiceRepo: p.InvoiceRepo,
	}
}

func (s *Service) CustomerReport(ctx context.Context) (domain.CustomerMetrics, error) {
	rows, err := s.repo.CustomerRows(ctx, s.db)
	if err != nil {
		return domain.CustomerMetrics{}, err
	}
	return domain.ComputeCustomerMetrics(rows), nil
}

func (s *Service) WasteReport(ctx context.Context) (domain.WasteMetrics, error) {
	rows, err := s.repo.WasteRows(ctx, s.db)
	if err != nil {
		return domain.WasteMetrics{}, err
	}
	return domain.ComputeWasteMetrics(rows), nil
}

func (s *Service) FinancialReport(ctx context.Context) (domain.FinancialMetrics, error) {
	invoices, err := s.repo.InvoiceRows(ctx, s.db)
	if err != nil {
		return domain.FinancialMetrics{}, err
	}
	payments, err := s.repo.PaymentRows(ctx, s.db)
	if err != nil {
		return domain.FinancialMetrics{}, err
	}
	return domain.ComputeFinancialMetrics(invoices, payments), nil
}

func (s *Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	invoices, err := s.invoiceRepo.ListForStats(ctx, s.db)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	customers, err := s.CustomerReport(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	waste, err := s.WasteReport(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	financial, err := s.FinancialReport(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	return domain.DashboardStats{
		InvoiceTotals: invoicedomain.ComputeStats(invoices),
		Customers:     customers,
		Waste:         waste,
		Financial:     financial,
	}, nil
}

func (s *Service) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	invoices, err := s.repo.RecentInvoices(ctx, s.db, limit)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.RecentPayments(ctx, s.db, limit)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.RecentWasteRecords(ctx, s.db, limit)
	if err != nil {
		return nil, err
	}

	return domain.MergeActivity(limit, invoices, payments, records), nil
}
