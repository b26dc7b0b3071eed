package report

import (
	"sort"
	"time"

	"github.com/punchly/punchly-backend-go/internal/domain/report"
	"github.com/punchly/punchly-backend-go/internal/pkg/dateutil"
	"github.com/punchly/punchly-backend-go/internal/pkg/excel"
	"github.com/shopspring/decimal"
)

type employeeGroup struct {
	TypeName  string
	Employees []report.ReportEmployee
}

// groupByEmployeeType buckets employees by employee type name, groups and
// members both sorted alphabetically for stable sheet output.
func groupByEmployeeType(employees []report.ReportEmployee) []employeeGroup {
	byType := make(map[string][]report.ReportEmployee)
	for _, emp := range employees {
		byType[emp.EmployeeTypeName] = append(byType[emp.EmployeeTypeName], emp)
	}

	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]employeeGroup, 0, len(names))
	for _, name := range names {
		members := byType[name]
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
		groups = append(groups, employeeGroup{TypeName: name, Employees: members})
	}
	return groups
}

// buildOverviewSheet renders sheet 1: per employee type, one row per employee
// with master data and salary fields, blank where not applicable.
func buildOverviewSheet(employees []report.ReportEmployee) excel.Sheet {
	sheet := excel.Sheet{
		Name:         "Employees",
		ColumnWidths: []float64{22, 26, 14, 30, 14, 16, 14},
	}

	header := excel.Row{
		excel.Styled("Department", excel.StyleHeader),
		excel.Styled("Name", excel.StyleHeader),
		excel.Styled("Birthdate", excel.StyleHeader),
		excel.Styled("Address", excel.StyleHeader),
		excel.Styled("Hourly salary", excel.StyleHeader),
		excel.Styled("Monthly salary", excel.StyleHeader),
		excel.Styled("Monthly hours", excel.StyleHeader),
	}
	sheet.Rows = append(sheet.Rows, header)

	for _, group := range groupByEmployeeType(employees) {
		groupRow := len(sheet.Rows) + 1
		sheet.Rows = append(sheet.Rows, excel.Row{excel.Styled(group.TypeName, excel.StyleGroup)})
		sheet.Merges = append(sheet.Merges, excel.Merge{
			FromCol: 1, FromRow: groupRow,
			ToCol: len(header), ToRow: groupRow,
		})

		for _, emp := range group.Employees {
			sheet.Rows = append(sheet.Rows, excel.Row{
				excel.Str(emp.DepartmentName),
				excel.Str(emp.Name),
				excel.Str(emp.Birthdate.Format("2006-01-02")),
				excel.Str(formatAddress(emp.Address, emp.City)),
				optionalNumber(emp.HourlySalary),
				optionalNumber(emp.MonthlySalary),
				optionalNumber(emp.MonthlyHours),
			})
		}
	}

	return sheet
}

// buildDailyGridSheet renders sheet 2: for every distinct local calendar day
// that carries an attendance check-in or an absence, three rows (check-in,
// check-out, daily total) with one column per employee. When a day carries
// both an absence and attendance, the absence wins visually.
func buildDailyGridSheet(employees []report.ReportEmployee, loc *time.Location) excel.Sheet {
	days := collectGridDays(employees, loc)

	sheet := excel.Sheet{
		Name:         "Daily records",
		ColumnWidths: gridColumnWidths(len(employees)),
	}

	header := excel.Row{
		excel.Styled("Date", excel.StyleHeader),
		excel.Styled("", excel.StyleHeader),
	}
	for _, emp := range employees {
		header = append(header, excel.Styled(emp.Name, excel.StyleHeader))
	}
	sheet.Rows = append(sheet.Rows, header)

	for _, day := range days {
		checkInRow := excel.Row{excel.Str(day.Format("2006-01-02")), excel.Str("check-in")}
		checkOutRow := excel.Row{excel.Str(""), excel.Str("check-out")}
		totalRow := excel.Row{excel.Str(""), excel.Str("daily total")}

		for _, emp := range employees {
			checkInRow = append(checkInRow, checkInCell(emp, day, loc))
			checkOutRow = append(checkOutRow, checkOutCell(emp, day, loc))
			totalRow = append(totalRow, dailyTotalCell(emp, day, loc))
		}

		dateRow := len(sheet.Rows) + 1
		sheet.Rows = append(sheet.Rows, checkInRow, checkOutRow, totalRow)
		sheet.Merges = append(sheet.Merges, excel.Merge{
			FromCol: 1, FromRow: dateRow,
			ToCol: 1, ToRow: dateRow + 2,
		})
	}

	return sheet
}

// collectGridDays returns the sorted distinct local calendar days that appear
// as an attendance check-in date or inside an absence span, for any employee.
func collectGridDays(employees []report.ReportEmployee, loc *time.Location) []time.Time {
	seen := make(map[string]time.Time)

	for _, emp := range employees {
		for _, rec := range emp.Attendance {
			day := dateutil.LocalDay(rec.CheckIn, loc)
			seen[day.Format("2006-01-02")] = day
		}
		for _, abs := range emp.Absences {
			for _, d := range dateutil.DaysBetween(abs.StartDate, abs.EndDate) {
				// Absence days are calendar days, carried into the
				// report timezone verbatim
				day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
				seen[day.Format("2006-01-02")] = day
			}
		}
	}

	days := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// absenceNameOn returns the absence type covering the given local day, if any.
func absenceNameOn(emp report.ReportEmployee, day time.Time) (string, bool) {
	utcDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	for _, abs := range emp.Absences {
		absStart, _ := dateutil.DayBounds(abs.StartDate)
		_, absEnd := dateutil.DayBounds(abs.EndDate)
		if dateutil.Overlaps(utcDay, utcDay, absStart, absEnd) {
			return abs.AbsenceTypeName, true
		}
	}
	return "", false
}

func recordsOn(emp report.ReportEmployee, day time.Time, loc *time.Location) []report.ReportAttendanceRecord {
	var records []report.ReportAttendanceRecord
	for _, rec := range emp.Attendance {
		if dateutil.LocalDay(rec.CheckIn, loc).Equal(day) {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CheckIn.Before(records[j].CheckIn) })
	return records
}

func checkInCell(emp report.ReportEmployee, day time.Time, loc *time.Location) excel.Cell {
	if name, absent := absenceNameOn(emp, day); absent {
		return excel.Str(name)
	}
	records := recordsOn(emp, day, loc)
	if len(records) == 0 {
		return excel.Str("")
	}
	return excel.Str(records[0].CheckIn.In(loc).Format("15:04"))
}

func checkOutCell(emp report.ReportEmployee, day time.Time, loc *time.Location) excel.Cell {
	if name, absent := absenceNameOn(emp, day); absent {
		return excel.Str(name)
	}
	records := recordsOn(emp, day, loc)
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].CheckOut == nil {
			continue
		}
		value := records[i].CheckOut.In(loc).Format("15:04")
		if records[i].AutoClosed {
			return excel.Styled(value, excel.StyleHighlight)
		}
		return excel.Str(value)
	}
	return excel.Str("")
}

func dailyTotalCell(emp report.ReportEmployee, day time.Time, loc *time.Location) excel.Cell {
	if _, absent := absenceNameOn(emp, day); absent {
		return excel.Str("")
	}
	records := recordsOn(emp, day, loc)
	if len(records) == 0 {
		return excel.Str("")
	}
	total := 0
	for _, rec := range records {
		total += rec.WorkedMinutes()
	}
	return excel.Str(dateutil.FormatMinutes(total))
}

// buildSalarySheet renders sheet 3: per employee type, total worked time and
// earnings per employee.
func buildSalarySheet(employees []report.ReportEmployee) excel.Sheet {
	sheet := excel.Sheet{
		Name:         "Salaries",
		ColumnWidths: []float64{26, 14, 14, 16, 14},
	}

	header := excel.Row{
		excel.Styled("Name", excel.StyleHeader),
		excel.Styled("Total hours", excel.StyleHeader),
		excel.Styled("Hourly salary", excel.StyleHeader),
		excel.Styled("Monthly salary", excel.StyleHeader),
		excel.Styled("Earnings", excel.StyleHeader),
	}
	sheet.Rows = append(sheet.Rows, header)

	for _, group := range groupByEmployeeType(employees) {
		groupRow := len(sheet.Rows) + 1
		sheet.Rows = append(sheet.Rows, excel.Row{excel.Styled(group.TypeName, excel.StyleGroup)})
		sheet.Merges = append(sheet.Merges, excel.Merge{
			FromCol: 1, FromRow: groupRow,
			ToCol: len(header), ToRow: groupRow,
		})

		for _, emp := range group.Employees {
			totalMinutes := 0
			for _, rec := range emp.Attendance {
				totalMinutes += rec.WorkedMinutes()
			}

			sheet.Rows = append(sheet.Rows, excel.Row{
				excel.Str(emp.Name),
				excel.Str(totalHours(totalMinutes).StringFixed(2)),
				optionalNumber(emp.HourlySalary),
				optionalNumber(emp.MonthlySalary),
				excel.Str(computeEarnings(emp.HourlySalary, emp.MonthlySalary, totalMinutes)),
			})
		}
	}

	return sheet
}

func totalHours(totalMinutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(totalMinutes)).Div(decimal.NewFromInt(60))
}

// computeEarnings follows the payroll rule: hourly employees earn rate times
// worked hours; monthly employees earn the flat monthly salary regardless of
// hours; everyone else earns 0.
func computeEarnings(hourlySalary, monthlySalary *float64, totalMinutes int) string {
	switch {
	case hourlySalary != nil:
		rate := decimal.NewFromFloat(*hourlySalary)
		return rate.Mul(totalHours(totalMinutes)).StringFixed(2)
	case monthlySalary != nil:
		return decimal.NewFromFloat(*monthlySalary).StringFixed(2)
	default:
		return decimal.Zero.StringFixed(2)
	}
}

func formatAddress(address, city *string) string {
	switch {
	case address != nil && city != nil:
		return *address + ", " + *city
	case address != nil:
		return *address
	case city != nil:
		return *city
	default:
		return ""
	}
}

func optionalNumber(v *float64) excel.Cell {
	if v == nil {
		return excel.Str("")
	}
	return excel.Val(*v)
}

func gridColumnWidths(employeeCount int) []float64 {
	widths := []float64{12, 12}
	for i := 0; i < employeeCount; i++ {
		widths = append(widths, 16)
	}
	return widths
}
