package format

import (
	"fmt"
	"time"
)

// statusPrefixes maps invoice statuses to the display-number prefix letter.
var statusPrefixes = map[string]string{
	"draft":  "D",
	"saved":  "V",
	"sent":   "S",
	"unpaid": "U",
	"paid":   "P",
}

// InvoiceNumber renders a human-readable invoice number as
// INVOICE#{prefix}{last4ofID}{DD}{MM}{YYYY}.
//
// This function is PURE:
// - No side effects
// - No DB access
// - Fully deterministic
//
// The number is re-derivable at any time and is never persisted.
func InvoiceNumber(status, id string, invoiceDate time.Time) string {
	prefix, ok := statusPrefixes[status]
	if !ok {
		prefix = "D"
	}

	suffix := id
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}

	return fmt.Sprintf("INVOICE#%s%s%02d%02d%04d",
		prefix,
		suffix,
		invoiceDate.Day(),
		int(invoiceDate.Month()),
		invoiceDate.Year(),
	)
}
