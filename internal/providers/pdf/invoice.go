package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// InvoiceData carries the rendered values for one invoice PDF.
type InvoiceData struct {
	CompanyName   string
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	CollectionOn  string

	BillToName     string
	BillToContact  string
	BillToEmail    string
	BillToLocation string

	ServiceType        string
	WasteQuantity      string
	AdditionalServices []string
	Notes              string

	AmountDue string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNumber, props.Text{Top: 0}),
			text.New("Date of issue: "+invoice.IssueDate, props.Text{Top: 4}),
			text.New("Date due: "+invoice.DueDate, props.Text{Top: 8}),
			text.New("Collection date: "+invoice.CollectionOn, props.Text{Top: 12}),
		),
		col.New(6),
	)

	m.AddRow(35,
		col.New(6).Add(
			text.New(invoice.CompanyName, props.Text{Style: fontstyle.Bold}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.BillToName, props.Text{Top: 5}),
			text.New(invoice.BillToContact, props.Text{Top: 9}),
			text.New(invoice.BillToLocation, props.Text{Top: 13}),
			text.New(invoice.BillToEmail, props.Text{Top: 17}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Quantity (kg)", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Service tier", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(12,
		text.NewCol(6, "Waste collection", props.Text{Size: 9}),
		text.NewCol(3, invoice.WasteQuantity, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(3, invoice.ServiceType, props.Text{Size: 9, Align: align.Right}),
	)

	for _, service := range invoice.AdditionalServices {
		m.AddRow(10,
			text.NewCol(12, "Additional service: "+service, props.Text{Size: 9}),
		)
	}

	if invoice.Notes != "" {
		m.AddRow(15,
			text.NewCol(12, "Notes: "+invoice.Notes, props.Text{Size: 9}),
		)
	}

	m.AddRow(12,
		col.New(8),
		text.NewCol(2, "Amount due", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, invoice.AmountDue, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
