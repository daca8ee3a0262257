package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/config"
	"github.com/evabo/wasteflow/internal/customer"
	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	"github.com/evabo/wasteflow/internal/invoice"
	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
	"github.com/evabo/wasteflow/internal/message"
	messagedomain "github.com/evabo/wasteflow/internal/message/domain"
	"github.com/evabo/wasteflow/internal/observability"
	obsmiddleware "github.com/evabo/wasteflow/internal/observability/logger"
	obsmetrics "github.com/evabo/wasteflow/internal/observability/metrics"
	obstracing "github.com/evabo/wasteflow/internal/observability/tracing"
	"github.com/evabo/wasteflow/internal/payment"
	paymentdomain "github.com/evabo/wasteflow/internal/payment/domain"
	"github.com/evabo/wasteflow/internal/product"
	productdomain "github.com/evabo/wasteflow/internal/product/domain"
	"github.com/evabo/wasteflow/internal/providers/email"
	"github.com/evabo/wasteflow/internal/providers/pdf"
	"github.com/evabo/wasteflow/internal/report"
	reportdomain "github.com/evabo/wasteflow/internal/report/domain"
	"github.com/evabo/wasteflow/internal/supplier"
	supplierdomain "github.com/evabo/wasteflow/internal/supplier/domain"
	"github.com/evabo/wasteflow/internal/wasterecord"
	wasterecorddomain "github.com/evabo/wasteflow/internal/wasterecord/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	email.Module,
	pdf.Module,
	customer.Module,
	supplier.Module,
	product.Module,
	wasterecord.Module,
	invoice.Module,
	payment.Module,
	message.Module,
	report.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	db             *gorm.DB
	genID          *snowflake.Node
	customerSvc    customerdomain.Service
	supplierSvc    supplierdomain.Service
	productSvc     productdomain.Service
	wasteRecordSvc wasterecorddomain.Service
	invoiceSvc     invoicedomain.Service
	paymentSvc     paymentdomain.Service
	messageSvc     messagedomain.Service
	reportSvc      reportdomain.Service
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	GenID          *snowflake.Node
	CustomerSvc    customerdomain.Service
	SupplierSvc    supplierdomain.Service
	ProductSvc     productdomain.Service
	WasteRecordSvc wasterecorddomain.Service
	InvoiceSvc     invoicedomain.Service
	PaymentSvc     paymentdomain.Service
	MessageSvc     messagedomain.Service
	ReportSvc      reportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		genID:          p.GenID,
		customerSvc:    p.CustomerSvc,
		supplierSvc:    p.SupplierSvc,
		productSvc:     p.ProductSvc,
		wasteRecordSvc: p.WasteRecordSvc,
		invoiceSvc:     p.InvoiceSvc,
		paymentSvc:     p.PaymentSvc,
		messageSvc:     p.MessageSvc,
		reportSvc:      p.ReportSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Customers --------
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	// -------- Suppliers --------
	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers", s.ListSuppliers)
	api.GET("/suppliers/:id", s.GetSupplierByID)
	api.PATCH("/suppliers/:id", s.UpdateSupplier)
	api.DELETE("/suppliers/:id", s.DeleteSupplier)

	// -------- Products --------
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	// -------- Waste records --------
	api.POST("/waste-records", s.CreateWasteRecord)
	api.GET("/waste-records", s.ListWasteRecords)
	api.GET("/waste-records/:id", s.GetWasteRecordByID)
	api.PATCH("/waste-records/:id", s.UpdateWasteRecord)
	api.DELETE("/waste-records/:id", s.DeleteWasteRecord)

	// -------- Invoices --------
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/stats", s.InvoiceStats)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.POST("/invoices/:id/transition", s.TransitionInvoice)
	api.GET("/invoices/:id/pdf", s.DownloadInvoicePDF)

	// -------- Payments --------
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments", s.ListPayments)
	api.GET("/payments/stats", s.PaymentStats)
	api.GET("/payments/:id", s.GetPaymentByID)
	api.PATCH("/payments/:id", s.UpdatePayment)

	// -------- Messages --------
	api.POST("/messages", s.CreateMessage)
	api.GET("/messages", s.ListMessages)
	api.GET("/messages/unread-count", s.UnreadMessageCount)
	api.GET("/messages/:id", s.GetMessageByID)
	api.PATCH("/messages/:id", s.UpdateMessage)

	// -------- Reports & dashboard --------
	api.GET("/reports/customers", s.CustomerReport)
	api.GET("/reports/waste", s.WasteReport)
	api.GET("/reports/financial", s.FinancialReport)
	api.GET("/dashboard/stats", s.DashboardStats)
	api.GET("/dashboard/recent-activity", s.RecentActivity)
}
