package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	supplierdomain "github.com/evabo/wasteflow/internal/supplier/domain"
	"github.com/evabo/wasteflow/internal/wasterecord/domain"
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
	SupplierRepo supplierdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	supplierRepo supplierdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("wasterecord.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		supplierRepo: p.SupplierRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateWasteRecordRequest) (domain.WasteRecord, error) {
	supplierID, err := snowflake.ParseString(strings.TrimSpace(req.SupplierID))
	if err != nil || supplierID == 0 {
		return domain.WasteRecord{}, supplierdomain.ErrInvalidID
	}

	wasteType := strings.TrimSpace(req.WasteType)
	if wasteType == "" {
		return domain.WasteRecord{}, domain.ErrInvalidWasteType
	}
	if req.Quantity.IsNegative() || req.Quantity.IsZero() {
		return domain.WasteRecord{}, domain.ErrInvalidQuantity
	}
	if req.RecordDate.IsZero() {
		return domain.WasteRecord{}, domain.ErrInvalidRecordDate
	}

	supplier, err := s.supplierRepo.FindByID(ctx, s.db, supplierID)
	if err != nil {
		return domain.WasteRecord{}, err
	}
	if supplier == nil {
		return domain.WasteRecord{}, supplierdomain.ErrNotFound
	}

	now := s.clock.Now()
	record := domain.WasteRecord{
		ID:         s.genID.Generate(),
		SupplierID: supplierID,
		WasteType:  wasteType,
		Quantity:   req.Quantity,
		Location:   strings.TrimSpace(req.Location),
		Status:     domain.StatusPending,
		RecordDate: truncateToDate(req.RecordDate),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &record); err != nil {
		return domain.WasteRecord{}, err
	}

	return record, nil
}

func (s *Service) List(ctx context.Context, req domain.ListWasteRecordRequest) (domain.ListWasteRecordResponse, error) {
	filter := domain.ListWasteRecordFilter{
		SupplierID: strings.TrimSpace(req.SupplierID),
		WasteType:  strings.TrimSpace(req.WasteType),
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
		return domain.ListWasteRecordResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(record *domain.WasteRecord) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        record.ID.String(),
			CreatedAt: record.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	records := make([]domain.WasteRecord, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		records = append(records, *item)
	}

	resp := domain.ListWasteRecordResponse{Records: records}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetWasteRecordRequest) (domain.WasteRecord, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.WasteRecord{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.WasteRecord{}, err
	}
	if item == nil {
		return domain.WasteRecord{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateWasteRecordRequest) (domain.WasteRecord, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.WasteRecord{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.WasteRecord{}, err
	}
	if item == nil {
		return domain.WasteRecord{}, domain.ErrNotFound
	}

	if req.WasteType != nil {
		wasteType := strings.TrimSpace(*req.WasteType)
		if wasteType == "" {
			return domain.WasteRecord{}, domain.ErrInvalidWasteType
		}
		item.WasteType = wasteType
	}
	if req.Quantity != nil {
		if req.Quantity.IsNegative() || req.Quantity.IsZero() {
			return domain.WasteRecord{}, domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Location != nil {
		item.Location = strings.TrimSpace(*req.Location)
	}
	if req.Status != nil {
		status, ok := parseStatus(*req.Status)
		if !ok {
			return domain.WasteRecord{}, domain.ErrInvalidStatus
		}
		item.Status = status
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.WasteRecord{}, err
	}

	return *item, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func parseStatus(raw string) (domain.RecordStatus, bool) {
	switch domain.RecordStatus(strings.TrimSpace(raw)) {
	case domain.StatusPending:
		return domain.StatusPending, true
	case domain.StatusCollected:
		return domain.StatusCollected, true
	case domain.StatusProcessed:
		return domain.StatusProcessed, true
	default:
		return "", false
	}
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
