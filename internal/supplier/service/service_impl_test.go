package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/supplier/domain"
	"github.com/evabo/wasteflow/internal/supplier/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Supplier{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func TestCreateSupplier(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	supplier, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:          "GreenCart Logistics",
		ContactPerson: "K. Owusu",
		Email:         "ops@greencart.example",
		Phone:         "+233200000001",
		WasteTypes:    []string{"organic", "plastic", "organic"},
		Location:      "Accra",
	})
	require.NoError(t, err)
	assert.NotZero(t, supplier.ID)
	assert.Equal(t, domain.StatusActive, supplier.Status)
	assert.Equal(t, []string{"organic", "plastic"}, []string(supplier.WasteTypes))

	loaded, err := svc.GetByID(ctx, domain.GetSupplierRequest{ID: supplier.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, supplier.Name, loaded.Name)
}

func TestCreateSupplier_DuplicateGuard(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "GreenCart Logistics",
		Email: "ops@greencart.example",
		Phone: "+233200000001",
	})
	require.NoError(t, err)

	// Name and email collide, phone does not.
	_, err = svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "GreenCart Logistics",
		Email: "ops@greencart.example",
		Phone: "+233200000099",
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.ElementsMatch(t, []string{"name", "email"}, dup.Fields)

	// Phone-only collision.
	_, err = svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "Blue Bin Services",
		Email: "hello@bluebin.example",
		Phone: "+233200000001",
	})
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"phone"}, dup.Fields)

	// Empty phones never collide with each other.
	_, err = svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "Clean City Crew",
		Email: "crew@cleancity.example",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "Harbor Haulers",
		Email: "dock@haulers.example",
	})
	require.NoError(t, err)
}

func TestUpdateSupplier_DuplicateGuardExcludesSelf(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "GreenCart Logistics",
		Email: "ops@greencart.example",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, domain.CreateSupplierRequest{
		Name:  "Blue Bin Services",
		Email: "hello@bluebin.example",
	})
	require.NoError(t, err)

	// Re-saving a supplier with its own values is not a conflict.
	contact := "K. Owusu"
	updated, err := svc.Update(ctx, domain.UpdateSupplierRequest{
		ID:            first.ID.String(),
		ContactPerson: &contact,
	})
	require.NoError(t, err)
	assert.Equal(t, contact, updated.ContactPerson)

	// Taking another supplier's email is.
	email := "ops@greencart.example"
	_, err = svc.Update(ctx, domain.UpdateSupplierRequest{
		ID:    second.ID.String(),
		Email: &email,
	})
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"email"}, dup.Fields)
}
