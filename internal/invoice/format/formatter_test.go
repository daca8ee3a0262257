package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		status string
		id     string
		want   string
	}{
		{"draft", "1958493021837461032", "INVOICE#D103201032025"},
		{"saved", "1958493021837461032", "INVOICE#V103201032025"},
		{"sent", "1958493021837461032", "INVOICE#S103201032025"},
		{"unpaid", "1958493021837461032", "INVOICE#U103201032025"},
		{"paid", "1958493021837461032", "INVOICE#P103201032025"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InvoiceNumber(tc.status, tc.id, date))
	}
}

func TestInvoiceNumber_Idempotent(t *testing.T) {
	date := time.Date(2024, time.December, 9, 15, 4, 5, 0, time.UTC)
	first := InvoiceNumber("paid", "887766", date)
	second := InvoiceNumber("paid", "887766", date)
	assert.Equal(t, first, second)
}

func TestInvoiceNumber_StatusChangesOnlyPrefix(t *testing.T) {
	date := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
	paid := InvoiceNumber("paid", "424242", date)
	unpaid := InvoiceNumber("unpaid", "424242", date)
	assert.Equal(t, paid[len("INVOICE#")+1:], unpaid[len("INVOICE#")+1:])
	assert.NotEqual(t, paid, unpaid)
}

func TestInvoiceNumber_ShortID(t *testing.T) {
	date := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INVOICE#D7302012025", InvoiceNumber("draft", "73", date))
	assert.Equal(t, "INVOICE#P02012025", InvoiceNumber("paid", "", date))
}

func TestInvoiceNumber_ZeroPadding(t *testing.T) {
	date := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INVOICE#S123403022025", InvoiceNumber("sent", "91234", date))
}

func TestInvoiceNumber_UnknownStatusDefaultsToDraft(t *testing.T) {
	date := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, InvoiceNumber("draft", "5555", date), InvoiceNumber("void", "5555", date))
}
