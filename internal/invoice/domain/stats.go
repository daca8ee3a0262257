package domain

import "github.com/shopspring/decimal"

// StatusTotals sums invoice amounts grouped by status. Statuses with no
// invoices contribute zero.
type StatusTotals struct {
	Draft  decimal.Decimal `json:"draft"`
	Saved  decimal.Decimal `json:"saved"`
	Sent   decimal.Decimal `json:"sent"`
	Unpaid decimal.Decimal `json:"unpaid"`
	Paid   decimal.Decimal `json:"paid"`
}

// ComputeStats aggregates amounts by status over the given invoices.
// Pure: no side effects, no collaborator calls.
func ComputeStats(invoices []Invoice) StatusTotals {
	totals := StatusTotals{
		Draft:  decimal.Zero,
		Saved:  decimal.Zero,
		Sent:   decimal.Zero,
		Unpaid: decimal.Zero,
		Paid:   decimal.Zero,
	}

	for _, inv := range invoices {
		switch inv.Status {
		case StatusDraft:
			totals.Draft = totals.Draft.Add(inv.Amount)
		case StatusSaved:
			totals.Saved = totals.Saved.Add(inv.Amount)
		case StatusSent:
			totals.Sent = totals.Sent.Add(inv.Amount)
		case StatusUnpaid:
			totals.Unpaid = totals.Unpaid.Add(inv.Amount)
		case StatusPaid:
			totals.Paid = totals.Paid.Add(inv.Amount)
		}
	}

	return totals
}
