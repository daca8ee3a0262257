package service

import (
	"context"

	"github.com/evabo/wasteflow/internal/config"
	"github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/evabo/wasteflow/internal/invoice/format"
	"github.com/evabo/wasteflow/internal/invoice/render"
	"github.com/evabo/wasteflow/internal/providers/email"
)

// EmailNotifier dispatches invoice emails through the SMTP provider.
type EmailNotifier struct {
	email       email.Provider
	companyName string
}

func NewEmailNotifier(cfg config.Config, provider email.Provider) domain.Notifier {
	return &EmailNotifier{
		email:       provider,
		companyName: cfg.CompanyName,
	}
}

func (n *EmailNotifier) SendInvoice(ctx context.Context, invoice domain.Invoice, customerName, customerEmail string) error {
	subject, body, err := render.InvoiceEmail(render.EmailData{
		CompanyName:   n.companyName,
		CustomerName:  customerName,
		InvoiceNumber: format.InvoiceNumber(string(invoice.Status), invoice.ID.String(), invoice.InvoiceDate),
		Amount:        invoice.Amount.StringFixed(2),
		DueDate:       invoice.DueDate.Format("January 2, 2006"),
	})
	if err != nil {
		return err
	}

	return n.email.Send(ctx, []string{customerEmail}, subject, body)
}
