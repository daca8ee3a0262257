package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNextTransition_Legal(t *testing.T) {
	cases := []struct {
		from, to   Status
		notify     bool
		correction bool
	}{
		{StatusDraft, StatusSaved, false, false},
		{StatusDraft, StatusSent, true, false},
		{StatusDraft, StatusPaid, false, false},
		{StatusSaved, StatusSent, true, false},
		{StatusSaved, StatusPaid, false, false},
		{StatusSent, StatusPaid, false, false},
		{StatusSent, StatusUnpaid, false, true},
		{StatusUnpaid, StatusPaid, false, false},
		{StatusPaid, StatusUnpaid, false, true},
	}

	for _, tc := range cases {
		tr, err := NextTransition(tc.from, tc.to)
		assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.notify, tr.Notify, "%s -> %s notify", tc.from, tc.to)
		assert.Equal(t, tc.correction, tr.Correction, "%s -> %s correction", tc.from, tc.to)
	}
}

func TestNextTransition_Illegal(t *testing.T) {
	cases := []struct{ from, to Status }{
		{StatusDraft, StatusUnpaid}, // must be billed before it can be unpaid
		{StatusDraft, StatusDraft},
		{StatusSaved, StatusDraft},
		{StatusSaved, StatusUnpaid},
		{StatusSent, StatusDraft},
		{StatusSent, StatusSaved},
		{StatusUnpaid, StatusDraft},
		{StatusUnpaid, StatusSaved},
		{StatusUnpaid, StatusSent},
		{StatusPaid, StatusDraft},
		{StatusPaid, StatusSaved},
		{StatusPaid, StatusSent},
		{StatusPaid, StatusPaid},
	}

	for _, tc := range cases {
		_, err := NextTransition(tc.from, tc.to)
		assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"draft", "saved", "sent", "unpaid", "paid"} {
		status, ok := ParseStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, Status(valid), status)
	}

	for _, invalid := range []string{"", "open", "void", "DRAFT", "Paid"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, "%q should be rejected", invalid)
	}
}

func TestComputeStats(t *testing.T) {
	amount := func(v int) decimal.Decimal { return decimal.NewFromInt(int64(v)) }

	totals := ComputeStats([]Invoice{
		{Status: StatusPaid, Amount: amount(100)},
		{Status: StatusPaid, Amount: amount(50)},
		{Status: StatusDraft, Amount: amount(30)},
		{Status: StatusUnpaid, Amount: amount(20)},
	})

	assert.True(t, amount(150).Equal(totals.Paid))
	assert.True(t, amount(30).Equal(totals.Draft))
	assert.True(t, amount(20).Equal(totals.Unpaid))
	assert.True(t, totals.Saved.IsZero())
	assert.True(t, totals.Sent.IsZero())
}

func TestComputeStats_Empty(t *testing.T) {
	totals := ComputeStats(nil)
	assert.True(t, totals.Draft.IsZero())
	assert.True(t, totals.Paid.IsZero())
}
