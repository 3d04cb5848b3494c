package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kanmwangi2/payroll-backend-go/internal/config"
	appHTTP "github.com/kanmwangi2/payroll-backend-go/internal/handler/http"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/database"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/jwt"
	"github.com/kanmwangi2/payroll-backend-go/internal/repository/postgresql"
	companyService "github.com/kanmwangi2/payroll-backend-go/internal/service/company"
	deductionService "github.com/kanmwangi2/payroll-backend-go/internal/service/deduction"
	payrollService "github.com/kanmwangi2/payroll-backend-go/internal/service/payroll"
	paytypeService "github.com/kanmwangi2/payroll-backend-go/internal/service/paytype"
	staffService "github.com/kanmwangi2/payroll-backend-go/internal/service/staff"
	taxService "github.com/kanmwangi2/payroll-backend-go/internal/service/tax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	payTypeRepo := postgresql.NewPaymentTypeRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	taxRepo := postgresql.NewTaxRepository(db)
	runRepo := postgresql.NewRunRepository(db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	companySvc := companyService.NewCompanyService(db, companyRepo, payTypeRepo, deductionRepo)
	staffSvc := staffService.NewStaffService(staffRepo, payTypeRepo)
	payTypeSvc := paytypeService.NewPaymentTypeService(payTypeRepo)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, staffRepo)
	taxSvc := taxService.NewTaxService(taxRepo)
	runSvc := payrollService.NewRunService(db, runRepo, companyRepo, taxRepo, payTypeRepo, deductionRepo, staffRepo, logger)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	payTypeHandler := appHTTP.NewPaymentTypeHandler(payTypeSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	taxHandler := appHTTP.NewTaxHandler(taxSvc)
	payrollHandler := appHTTP.NewPayrollHandler(runSvc)

	router := appHTTP.NewRouter(
		JWTService,
		companyHandler,
		staffHandler,
		payTypeHandler,
		deductionHandler,
		taxHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
