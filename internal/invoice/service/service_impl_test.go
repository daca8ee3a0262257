package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/config"
	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	customerrepo "github.com/evabo/wasteflow/internal/customer/repository"
	"github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/evabo/wasteflow/internal/invoice/repository"
	"github.com/evabo/wasteflow/internal/providers/pdf"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	sends int
	fail  error
	last  string
}

func (f *fakeNotifier) SendInvoice(ctx context.Context, invoice domain.Invoice, customerName, customerEmail string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sends++
	f.last = customerEmail
	return nil
}

type fixture struct {
	svc      domain.Service
	db       *gorm.DB
	node     *snowflake.Node
	clock    *clock.FakeClock
	notifier *fakeNotifier
	repo     domain.Repository
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&customerdomain.Customer{}, &domain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fc := clock.NewFakeClock(time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))
	notifier := &fakeNotifier{}
	repo := repository.Provide()

	svc := New(Params{
		DB:           db,
		Log:          zap.NewNop(),
		Cfg:          config.Config{CompanyName: "Waste Management Evabo"},
		GenID:        node,
		Clock:        fc,
		Repo:         repo,
		CustomerRepo: customerrepo.Provide(),
		Notifier:     notifier,
		PDF:          &pdf.NoOpProvider{},
	})

	return &fixture{svc: svc, db: db, node: node, clock: fc, notifier: notifier, repo: repo}
}

func (f *fixture) seedCustomer(t *testing.T, customerType customerdomain.CustomerType, email string) customerdomain.Customer {
	t.Helper()

	now := f.clock.Now()
	customer := customerdomain.Customer{
		ID:            f.node.Generate(),
		Name:          "Greenfield Towers",
		ContactPerson: "A. Mensah",
		Email:         email,
		Status:        customerdomain.StatusActive,
		Type:          customerType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, customerrepo.Provide().Insert(context.Background(), f.db, &customer))
	return customer
}

func TestCreateInvoice(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")

	collection := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)
	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: collection,
		WasteQuantity:  decimal.NewFromInt(100),
		ServiceType:    "standard",
	})
	require.NoError(t, err)

	assert.NotZero(t, invoice.ID)
	assert.Equal(t, domain.StatusDraft, invoice.Status)
	assert.Equal(t, "250.00", invoice.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), invoice.InvoiceDate)
	assert.Equal(t, collection.AddDate(0, 0, 30), invoice.DueDate)

	loaded, err := f.svc.GetByID(ctx, invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, loaded.ID)
	assert.Equal(t, customer.Name, loaded.Customer.Name)
}

func TestCreateInvoice_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")
	collection := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: collection,
		WasteQuantity:  decimal.NewFromInt(-1),
		ServiceType:    "standard",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: collection,
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "deluxe",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidServiceType)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     f.node.Generate().String(),
		CollectionDate: collection,
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "standard",
	})
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     "not-a-number",
		CollectionDate: collection,
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "standard",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCustomerID)
}

func TestDueDate_MonthAndYearBoundaries(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeEstate, "estate@greenfield.example")

	cases := []struct {
		collection string
		due        string
	}{
		{"2024-01-15", "2024-02-14"},
		{"2024-12-20", "2025-01-19"},
		{"2024-02-01", "2024-03-02"}, // leap year February
	}

	for _, tc := range cases {
		collection, err := time.Parse("2006-01-02", tc.collection)
		require.NoError(t, err)

		invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
			CustomerID:     customer.ID.String(),
			CollectionDate: collection,
			WasteQuantity:  decimal.NewFromInt(5),
			ServiceType:    "premium",
		})
		require.NoError(t, err)
		assert.Equal(t, tc.due, invoice.DueDate.Format("2006-01-02"), "collection %s", tc.collection)
	}
}

func TestInvoiceLifecycle_EndToEnd(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")

	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		WasteQuantity:  decimal.NewFromInt(100),
		ServiceType:    "standard",
	})
	require.NoError(t, err)
	assert.Equal(t, "250.00", invoice.Amount.StringFixed(2))
	assert.Equal(t, domain.StatusDraft, invoice.Status)

	id := invoice.ID.String()

	invoice, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "saved"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSaved, invoice.Status)
	assert.Equal(t, 0, f.notifier.sends)

	invoice, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "sent"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, invoice.Status)
	assert.Equal(t, 1, f.notifier.sends)
	assert.Equal(t, customer.Email, f.notifier.last)

	invoice, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, invoice.Status)

	_, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "saved"})
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	// Amount must survive the whole lifecycle untouched.
	final, err := f.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "250.00", final.Amount.StringFixed(2))
	assert.Equal(t, 1, f.notifier.sends)
}

func TestTransition_SendRequiresEmail(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "")

	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "standard",
	})
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, domain.TransitionRequest{
		InvoiceID:    invoice.ID.String(),
		TargetStatus: "sent",
	})
	assert.ErrorIs(t, err, domain.ErrMissingCustomerEmail)
	assert.Equal(t, 0, f.notifier.sends)

	loaded, err := f.svc.GetByID(ctx, invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, loaded.Status)
}

func TestTransition_NotificationFailureKeepsStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")

	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "standard",
	})
	require.NoError(t, err)

	f.notifier.fail = errors.New("smtp unavailable")
	_, err = f.svc.Transition(ctx, domain.TransitionRequest{
		InvoiceID:    invoice.ID.String(),
		TargetStatus: "sent",
	})
	assert.ErrorIs(t, err, domain.ErrNotificationFailed)

	loaded, err := f.svc.GetByID(ctx, invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, loaded.Status)

	// Retry succeeds once the collaborator recovers.
	f.notifier.fail = nil
	updated, err := f.svc.Transition(ctx, domain.TransitionRequest{
		InvoiceID:    invoice.ID.String(),
		TargetStatus: "sent",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, updated.Status)
}

func TestTransition_CorrectionPath(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeCorporateOffice, "office@acme.example")

	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "standard",
	})
	require.NoError(t, err)
	id := invoice.ID.String()

	_, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "sent"})
	require.NoError(t, err)

	updated, err := f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "unpaid"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnpaid, updated.Status)

	updated, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, updated.Status)

	updated, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: id, TargetStatus: "unpaid"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnpaid, updated.Status)

	// draft -> unpaid is not reachable for a fresh invoice.
	fresh, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: time.Date(2025, time.February, 21, 0, 0, 0, 0, time.UTC),
		WasteQuantity:  decimal.NewFromInt(1),
		ServiceType:    "standard",
	})
	require.NoError(t, err)
	_, err = f.svc.Transition(ctx, domain.TransitionRequest{InvoiceID: fresh.ID.String(), TargetStatus: "unpaid"})
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestTransition_ConditionalUpdateDetectsRace(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")

	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:     customer.ID.String(),
		CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		WasteQuantity:  decimal.NewFromInt(10),
		ServiceType:    "standard",
	})
	require.NoError(t, err)

	// Expected status no longer matches the row: the write must not apply.
	updated, err := f.repo.UpdateStatus(ctx, f.db, invoice.ID, domain.StatusPaid, domain.StatusUnpaid, f.clock.Now())
	require.NoError(t, err)
	assert.False(t, updated)

	loaded, err := f.svc.GetByID(ctx, invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, loaded.Status)
}

func TestStats(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")

	mk := func(quantity int64, target domain.Status) {
		invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
			CustomerID:     customer.ID.String(),
			CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
			WasteQuantity:  decimal.NewFromInt(quantity),
			ServiceType:    "standard",
		})
		require.NoError(t, err)

		if target == domain.StatusDraft {
			return
		}
		_, err = f.svc.Transition(ctx, domain.TransitionRequest{
			InvoiceID:    invoice.ID.String(),
			TargetStatus: string(target),
		})
		require.NoError(t, err)
	}

	mk(40, domain.StatusPaid)  // 100
	mk(20, domain.StatusPaid)  // 50
	mk(12, domain.StatusDraft) // 30
	mk(8, domain.StatusSaved)  // 20

	totals, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "150.00", totals.Paid.StringFixed(2))
	assert.Equal(t, "30.00", totals.Draft.StringFixed(2))
	assert.Equal(t, "20.00", totals.Saved.StringFixed(2))
	assert.Equal(t, "0.00", totals.Sent.StringFixed(2))
	assert.Equal(t, "0.00", totals.Unpaid.StringFixed(2))
}

func TestList_FilterByStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, customerdomain.TypeApartment, "billing@greenfield.example")

	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
			CustomerID:     customer.ID.String(),
			CollectionDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
			WasteQuantity:  decimal.NewFromInt(int64(i + 1)),
			ServiceType:    "standard",
		})
		require.NoError(t, err)
	}

	resp, err := f.svc.List(ctx, domain.ListInvoiceRequest{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, resp.Invoices, 3)
	for _, item := range resp.Invoices {
		assert.Equal(t, domain.StatusDraft, item.Status)
		assert.Equal(t, customer.Name, item.Customer.Name)
	}

	resp, err = f.svc.List(ctx, domain.ListInvoiceRequest{Status: "paid"})
	require.NoError(t, err)
	assert.Empty(t, resp.Invoices)

	_, err = f.svc.List(ctx, domain.ListInvoiceRequest{Status: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
