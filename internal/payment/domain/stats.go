package domain

import "github.com/shopspring/decimal"

// PaymentTotals buckets payment amounts for the dashboard cards.
// Completed payments land in their type's bucket; pending payments land
// in the pending bucket regardless of type.
type PaymentTotals struct {
	Collected decimal.Decimal `json:"collected"`
	Disbursed decimal.Decimal `json:"disbursed"`
	Pending   decimal.Decimal `json:"pending"`
}

func ComputeTotals(payments []*Payment) PaymentTotals {
	totals := PaymentTotals{
		Collected: decimal.Zero,
		Disbursed: decimal.Zero,
		Pending:   decimal.Zero,
	}
	for _, payment := range payments {
		if payment == nil {
			continue
		}
		if payment.Status == StatusPending {
			totals.Pending = totals.Pending.Add(payment.Amount)
			continue
		}
		switch payment.Type {
		case TypeCollected:
			totals.Collected = totals.Collected.Add(payment.Amount)
		case TypeDisbursed:
			totals.Disbursed = totals.Disbursed.Add(payment.Amount)
		}
	}
	return totals
}
