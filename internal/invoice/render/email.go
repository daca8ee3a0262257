// Package render builds customer-facing invoice representations.
package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// EmailData feeds the invoice notification template.
type EmailData struct {
	CompanyName   string
	CustomerName  string
	InvoiceNumber string
	Amount        string
	DueDate       string
}

const invoiceEmailTemplate = `<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; margin: 0; padding: 0; color: #333; }
      .container { width: 100%; max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: #f8f9fa; padding: 20px; text-align: center; border-bottom: 2px solid #dee2e6; }
      .content { padding: 20px; }
      .invoice-details { margin: 20px 0; border: 1px solid #dee2e6; border-radius: 4px; padding: 15px; background-color: #f8f9fa; }
      .footer { margin-top: 30px; text-align: center; font-size: 0.8em; color: #6c757d; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>Invoice from {{.CompanyName}}</h1>
      </div>
      <div class="content">
        <p>Dear {{.CustomerName}},</p>
        <p>Please find your invoice details below:</p>
        <div class="invoice-details">
          <p><strong>Invoice number:</strong> {{.InvoiceNumber}}</p>
          <p><strong>Amount due:</strong> {{.Amount}}</p>
          <p><strong>Due date:</strong> {{.DueDate}}</p>
        </div>
        <p>Thank you for your business.</p>
      </div>
      <div class="footer">
        <p>{{.CompanyName}}</p>
      </div>
    </div>
  </body>
</html>`

var emailTmpl = template.Must(template.New("invoice_email").Parse(invoiceEmailTemplate))

// InvoiceEmail renders the notification subject and HTML body.
func InvoiceEmail(data EmailData) (subject, htmlBody string, err error) {
	var body bytes.Buffer
	if err := emailTmpl.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("render invoice email: %w", err)
	}
	return fmt.Sprintf("Invoice %s from %s", data.InvoiceNumber, data.CompanyName), body.String(), nil
}
