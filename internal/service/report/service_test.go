package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/punchly/punchly-backend-go/internal/domain/report"
	"github.com/punchly/punchly-backend-go/internal/pkg/excel"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeReportRepo struct {
	employees []report.ReportEmployee
}

func (f *fakeReportRepo) GetEmployeesWithAttendanceAndAbsences(_ context.Context, _ string, _, _ time.Time, _ *string) ([]report.ReportEmployee, error) {
	return f.employees, nil
}

func floatPtr(v float64) *float64 { return &v }

func closedRecord(checkIn time.Time, d time.Duration) report.ReportAttendanceRecord {
	checkOut := checkIn.Add(d)
	return report.ReportAttendanceRecord{CheckIn: checkIn, CheckOut: &checkOut}
}

// Anna: hourly at 50, five 8h days. Ben: flat monthly salary with a
// single-day vacation in the middle of the range.
func testEmployees() []report.ReportEmployee {
	anna := report.ReportEmployee{
		ID:               "emp-anna",
		Name:             "Anna",
		Birthdate:        time.Date(1994, 5, 2, 0, 0, 0, 0, time.UTC),
		DepartmentName:   "Kitchen",
		EmployeeTypeName: "Full-time",
		HourlySalary:     floatPtr(50),
	}
	for day := 10; day <= 14; day++ {
		anna.Attendance = append(anna.Attendance,
			closedRecord(time.Date(2025, 3, day, 8, 0, 0, 0, time.UTC), 8*time.Hour))
	}

	ben := report.ReportEmployee{
		ID:               "emp-ben",
		Name:             "Ben",
		Birthdate:        time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		DepartmentName:   "Service",
		EmployeeTypeName: "Working student",
		MonthlySalary:    floatPtr(30000),
		Absences: []report.ReportAbsence{{
			StartDate:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			AbsenceTypeName: "Vacation",
		}},
	}

	return []report.ReportEmployee{anna, ben}
}

func generateTestReport(t *testing.T) (report.ReportFile, *excelize.File) {
	t.Helper()
	svc := NewReportService(&fakeReportRepo{employees: testEmployees()}, "UTC")

	file, err := svc.GenerateAttendanceReport(context.Background(), report.AttendanceReportRequest{
		CompanyID: "company-1",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
		Timezone:  "UTC",
	})
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	t.Cleanup(func() { workbook.Close() })
	return file, workbook
}

func TestGenerateAttendanceReportFileMetadata(t *testing.T) {
	file, workbook := generateTestReport(t)

	assert.Equal(t, "attendance-report_2025-03-01_2025-03-31.xlsx", file.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.Equal(t, []string{"Employees", "Daily records", "Salaries"}, workbook.GetSheetList())
}

func TestGenerateAttendanceReportLocksEverySheet(t *testing.T) {
	_, workbook := generateTestReport(t)

	// An unprotect attempt with a password can only fail against a sheet
	// that actually carries protection
	for _, name := range workbook.GetSheetList() {
		err := workbook.UnprotectSheet(name, "not-the-password")
		assert.ErrorIs(t, err, excelize.ErrUnprotectSheetPassword, name)
	}
}

func TestOverviewSheetGroupsByEmployeeType(t *testing.T) {
	_, workbook := generateTestReport(t)

	// Groups sorted alphabetically, one member row each
	cell := func(axis string) string {
		v, err := workbook.GetCellValue("Employees", axis)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Department", cell("A1"))
	assert.Equal(t, "Full-time", cell("A2"))
	assert.Equal(t, "Anna", cell("B3"))
	assert.Equal(t, "Kitchen", cell("A3"))
	assert.Equal(t, "1994-05-02", cell("C3"))
	assert.Equal(t, "50", cell("E3"))
	assert.Equal(t, "Working student", cell("A4"))
	assert.Equal(t, "Ben", cell("B5"))
	assert.Equal(t, "30000", cell("F5"))
}

func TestDailyGridShowsAbsenceInsteadOfTimes(t *testing.T) {
	_, workbook := generateTestReport(t)

	cell := func(axis string) string {
		v, err := workbook.GetCellValue("Daily records", axis)
		require.NoError(t, err)
		return v
	}

	// Five grid days starting 2025-03-10; each day spans three rows after
	// the header. 2025-03-12 is the third day: rows 8..10.
	assert.Equal(t, "2025-03-12", cell("A8"))
	assert.Equal(t, "check-in", cell("B8"))
	assert.Equal(t, "08:00", cell("C8"))
	assert.Equal(t, "16:00", cell("C9"))
	assert.Equal(t, "8,00", cell("C10"))

	// Ben is absent that day: absence name in both time rows, blank total
	assert.Equal(t, "Vacation", cell("D8"))
	assert.Equal(t, "Vacation", cell("D9"))
	assert.Equal(t, "", cell("D10"))
}

func TestSalarySheetEarnings(t *testing.T) {
	_, workbook := generateTestReport(t)

	cell := func(axis string) string {
		v, err := workbook.GetCellValue("Salaries", axis)
		require.NoError(t, err)
		return v
	}

	// Anna: 40 worked hours at 50/h
	assert.Equal(t, "Anna", cell("A3"))
	assert.Equal(t, "40.00", cell("B3"))
	assert.Equal(t, "2000.00", cell("E3"))

	// Ben: flat monthly salary regardless of hours
	assert.Equal(t, "Ben", cell("A5"))
	assert.Equal(t, "0.00", cell("B5"))
	assert.Equal(t, "30000.00", cell("E5"))
}

func TestGenerateAttendanceReportMissingTimezoneUsesDefault(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{employees: testEmployees()}, "Europe/Berlin")

	file, err := svc.GenerateAttendanceReport(context.Background(), report.AttendanceReportRequest{
		CompanyID: "company-1",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	t.Cleanup(func() { workbook.Close() })

	// Anna's 08:00 UTC check-in renders in the configured fallback zone
	got, err := workbook.GetCellValue("Daily records", "C2")
	require.NoError(t, err)
	assert.Equal(t, "09:00", got)
}

func TestGenerateAttendanceReportRejectsInvalidTimezone(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, "UTC")

	_, err := svc.GenerateAttendanceReport(context.Background(), report.AttendanceReportRequest{
		CompanyID: "company-1",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
		Timezone:  "Not/AZone",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "timezone")
}

func TestGenerateAttendanceReportRejectsReversedRange(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, "UTC")

	_, err := svc.GenerateAttendanceReport(context.Background(), report.AttendanceReportRequest{
		CompanyID: "company-1",
		StartDate: "2025-03-31",
		EndDate:   "2025-03-01",
		Timezone:  "UTC",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestDailyTotalSumsSplitSessions(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	emp := report.ReportEmployee{
		Name: "Anna",
		Attendance: []report.ReportAttendanceRecord{
			closedRecord(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), 125*time.Minute),
			closedRecord(time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC), 35*time.Minute),
		},
	}

	cell := dailyTotalCell(emp, day, time.UTC)
	assert.Equal(t, "2,40", cell.Value)
}

func TestComputeEarnings(t *testing.T) {
	tests := []struct {
		name          string
		hourlySalary  *float64
		monthlySalary *float64
		totalMinutes  int
		want          string
	}{
		{"hourly", floatPtr(50), nil, 2400, "2000.00"},
		{"hourly partial hour", floatPtr(12.5), nil, 90, "18.75"},
		{"monthly flat", nil, floatPtr(30000), 0, "30000.00"},
		{"monthly ignores hours", nil, floatPtr(30000), 2400, "30000.00"},
		{"no salary", nil, nil, 480, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeEarnings(tt.hourlySalary, tt.monthlySalary, tt.totalMinutes))
		})
	}
}

func TestCheckOutCellHighlightsAutoClosed(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	emp := report.ReportEmployee{
		Name: "Anna",
		Attendance: []report.ReportAttendanceRecord{{
			CheckIn:    time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			CheckOut:   &checkOut,
			AutoClosed: true,
		}},
	}

	cell := checkOutCell(emp, day, time.UTC)
	assert.Equal(t, "17:30", cell.Value)
	assert.Equal(t, excel.StyleHighlight, cell.Style)
}

func TestFormatAddress(t *testing.T) {
	street := "Main St 1"
	city := "Berlin"

	assert.Equal(t, "Main St 1, Berlin", formatAddress(&street, &city))
	assert.Equal(t, "Main St 1", formatAddress(&street, nil))
	assert.Equal(t, "Berlin", formatAddress(nil, &city))
	assert.Equal(t, "", formatAddress(nil, nil))
}
