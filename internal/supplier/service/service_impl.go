package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/supplier/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("supplier.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidName
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Supplier{}, domain.ErrInvalidEmail
	}

	phone := strings.TrimSpace(req.Phone)
	if err := s.checkDuplicates(ctx, name, email, phone, 0); err != nil {
		return domain.Supplier{}, err
	}

	now := s.clock.Now()
	supplier := domain.Supplier{
		ID:            s.genID.Generate(),
		Name:          name,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         email,
		Phone:         phone,
		Status:        domain.StatusActive,
		WasteTypes:    datatypes.NewJSONSlice(normalizeWasteTypes(req.WasteTypes)),
		Location:      strings.TrimSpace(req.Location),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &supplier); err != nil {
		return domain.Supplier{}, err
	}

	return supplier, nil
}

func (s *Service) List(ctx context.Context, req domain.ListSupplierRequest) (domain.ListSupplierResponse, error) {
	filter := domain.ListSupplierFilter{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Status: strings.TrimSpace(req.Status),
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
		return domain.ListSupplierResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(supplier *domain.Supplier) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        supplier.ID.String(),
			CreatedAt: supplier.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	suppliers := make([]domain.Supplier, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		suppliers = append(suppliers, *item)
	}

	resp := domain.ListSupplierResponse{Suppliers: suppliers}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetSupplierRequest) (domain.Supplier, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Supplier{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if item == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSupplierRequest) (domain.Supplier, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Supplier{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if item == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Supplier{}, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.ContactPerson != nil {
		item.ContactPerson = strings.TrimSpace(*req.ContactPerson)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			return domain.Supplier{}, domain.ErrInvalidEmail
		}
		item.Email = email
	}
	if req.Phone != nil {
		item.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Status != nil {
		status := domain.SupplierStatus(strings.TrimSpace(*req.Status))
		if status != domain.StatusActive && status != domain.StatusInactive {
			return domain.Supplier{}, domain.ErrInvalidStatus
		}
		item.Status = status
	}
	if req.WasteTypes != nil {
		item.WasteTypes = datatypes.NewJSONSlice(normalizeWasteTypes(*req.WasteTypes))
	}
	if req.Location != nil {
		item.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.checkDuplicates(ctx, item.Name, item.Email, item.Phone, id); err != nil {
		return domain.Supplier{}, err
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Supplier{}, err
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

// checkDuplicates rejects a supplier whose name, email or phone collides
// with another supplier, reporting every colliding field at once.
func (s *Service) checkDuplicates(ctx context.Context, name, email, phone string, excludeID snowflake.ID) error {
	conflicts, err := s.repo.FindConflicts(ctx, s.db, name, email, phone, excludeID)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		return nil
	}

	seen := make(map[string]bool, 3)
	var fields []string
	add := func(field string) {
		if !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}
	for _, other := range conflicts {
		if other == nil {
			continue
		}
		if other.Name == name {
			add("name")
		}
		if other.Email == email {
			add("email")
		}
		if phone != "" && other.Phone == phone {
			add("phone")
		}
	}
	if len(fields) == 0 {
		return nil
	}

	return &domain.DuplicateError{Fields: fields}
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func normalizeWasteTypes(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, wasteType := range raw {
		wasteType = strings.TrimSpace(wasteType)
		if wasteType == "" || seen[wasteType] {
			continue
		}
		seen[wasteType] = true
		out = append(out, wasteType)
	}
	return out
}
