package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"biztime/internal/common"
	"biztime/internal/db"
	"biztime/internal/handlers"
	"biztime/internal/repositories"
	"biztime/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		name := "biztime"
		if os.Getenv("BIZTIME_ENV") == "test" {
			name = "biztime_test"
		}
		databaseURL = "postgresql:///" + name
	}

	if err := db.Migrate(databaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := db.NewPool(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	industryRepo := repositories.NewIndustryRepository(pool)

	// Create services
	companySvc := services.NewCompanyService(companyRepo, invoiceRepo, industryRepo)
	invoiceSvc := services.NewInvoiceService(invoiceRepo)
	industrySvc := services.NewIndustryService(industryRepo, companyRepo)

	// Create handlers
	companyHandlers := handlers.NewCompanyHandlers(companySvc)
	invoiceHandlers := handlers.NewInvoiceHandlers(invoiceSvc)
	industryHandlers := handlers.NewIndustryHandlers(industrySvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = common.HTTPErrorHandler

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Company routes
	e.GET("/companies", companyHandlers.ListCompanies)
	e.POST("/companies", companyHandlers.CreateCompany)
	e.GET("/companies/:code", companyHandlers.GetCompany)
	e.PUT("/companies/:code", companyHandlers.UpdateCompany)
	e.DELETE("/companies/:code", companyHandlers.DeleteCompany)

	// Invoice routes
	e.GET("/invoices", invoiceHandlers.ListInvoices)
	e.POST("/invoices", invoiceHandlers.CreateInvoice)
	e.GET("/invoices/:id", invoiceHandlers.GetInvoice)
	e.PUT("/invoices/:id", invoiceHandlers.UpdateInvoice)
	e.DELETE("/invoices/:id", invoiceHandlers.DeleteInvoice)

	// Industry routes
	e.GET("/industries", industryHandlers.ListIndustries)
	e.POST("/industries", industryHandlers.CreateIndustry)
	e.GET("/industries/:code", industryHandlers.GetIndustry)
	e.POST("/industries/:code/companies", industryHandlers.AssociateCompany)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("BizTime server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
