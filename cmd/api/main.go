package main

import (
	"fmt"
	"net/http"

	"github.com/punchly/punchly-backend-go/internal/config"
	appHTTP "github.com/punchly/punchly-backend-go/internal/handler/http"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
	"github.com/punchly/punchly-backend-go/internal/pkg/jwt"
	"github.com/punchly/punchly-backend-go/internal/repository/postgresql"
	absenceService "github.com/punchly/punchly-backend-go/internal/service/absence"
	attendanceService "github.com/punchly/punchly-backend-go/internal/service/attendance"
	serviceAuth "github.com/punchly/punchly-backend-go/internal/service/auth"
	serviceCompany "github.com/punchly/punchly-backend-go/internal/service/company"
	employeeService "github.com/punchly/punchly-backend-go/internal/service/employee"
	"github.com/punchly/punchly-backend-go/internal/service/master"
	reportService "github.com/punchly/punchly-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeTypeRepo := postgresql.NewEmployeeTypeRepository(db)
	absenceTypeRepo := postgresql.NewAbsenceTypeRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRecordRepository(db)
	absenceRepo := postgresql.NewAbsenceRecordRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := serviceAuth.NewAuthService(userRepo, jwtService)
	companySvc := serviceCompany.NewCompanyService(companyRepo, absenceTypeRepo)
	masterSvc := master.NewMasterService(departmentRepo, employeeTypeRepo, absenceTypeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, companyRepo, departmentRepo, employeeTypeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, absenceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(reportRepo, cfg.Report.DefaultTimezone)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Absence:    appHTTP.NewAbsenceHandler(absenceSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
