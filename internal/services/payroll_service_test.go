package services

import (
	"testing"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateStripComputesSummaryFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO pay_strip").
		WillReturnResult(sqlmock.NewResult(4, 1))

	svc := PayrollService{Strips: repositories.PayStripRepository{DB: db}}
	admin := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleAdmin}

	p, err := svc.CreateStrip(admin, domain.PayStrip{
		PayDay:       "2025-08-15",
		StartDate:    "2025-08-01",
		EndDate:      "2025-08-15",
		EmployeeName: "juan d. cruz",
		EmployeeID:   "emp-01",
		Basic:        5000,
		Allowance1:   500,
		PayAdj:       -100,
		CADeduction:  200,
		SSS:          250,
		Philhealth:   150,
		PagIbig:      100,
		IncomeTax:    300,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if p.TotalPay != 5000+500-100 {
		t.Fatalf("total_pay = %v, want 5400", p.TotalPay)
	}
	if p.TotalDeduct != 200+250+150+100+300 {
		t.Fatalf("total_deduct = %v, want 1000", p.TotalDeduct)
	}
	if p.NetPay != p.TotalPay-p.TotalDeduct {
		t.Fatalf("net_pay = %v, want total_pay - total_deduct", p.NetPay)
	}
	if p.PayDay != "2025-08-15-Fri" {
		t.Fatalf("pay_day = %q, want canonical ledger form", p.PayDay)
	}
	if p.EmployeeName != "Juan D. Cruz" || p.EmployeeID != "EMP-01" {
		t.Fatalf("identity fields not normalized: %q / %q", p.EmployeeName, p.EmployeeID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateStripRejectsInvertedPeriod(t *testing.T) {
	svc := PayrollService{}
	admin := domain.Identity{ID: 1, Role: RoleAdmin}

	_, err := svc.CreateStrip(admin, domain.PayStrip{
		PayDay:       "2025-08-15",
		StartDate:    "2025-08-15",
		EndDate:      "2025-08-01",
		EmployeeName: "Juan",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for inverted period, got %v", err)
	}
}

func employeeRow(dateResigned string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "first_name", "middle_name", "last_name", "extn_name", "birthday", "gender",
		"house_no", "lot_no", "block_no", "sub_division", "purok", "brgy", "district", "city", "province", "zip_code",
		"employee_id", "date_hired", "date_resigned", "employment_status", "position", "rank",
		"sss_no", "philhealth_no", "pag_ibig_no", "sss_prem", "philhealth_prem", "pag_ibig_prem",
		"cash_adv", "ca_date", "ca_deduction", "ca_remaining",
		"basic", "allowance1", "allowance2", "allowance3",
	}).AddRow(
		1, "Juan D. Cruz", "Juan", "Dela", "Cruz", "", "1990-01-15-Mon", "Male",
		0, 0, "", "", "", "", "", "Davao City", "", "8000",
		"EMP-01", "2024-01-02-Tue", dateResigned, "REGULAR", "DRIVER", "R1",
		"SSS-1", "PH-1", "PI-1", 250.0, 150.0, 100.0,
		0.0, "?", 200.0, 0.0,
		5000.0, 500.0, 0.0, 0.0,
	)
}

func dispatchRows() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "dispatch_date", "wd_code", "slip_no", "route", "area",
		"odo_start", "odo_end", "km", "cbm", "qty", "drops", "rate",
		"plate_no", "driver", "courier", "pay_day", "invoice_no", "or_no", "or_amt",
		"encoded_on", "encoded_by", "encoder_id",
	})
	add := func(id int64, date, wd, slip, driver, courier string) {
		rows.AddRow(id, date, wd, slip, "Route", "Area",
			0, 10, 10.0, "3", "5", "2", "100",
			"ABC 123", driver, courier, "-", "-", "-", 0.0,
			date, "Mara", 1)
	}
	add(1, "2025-08-05-Tue", "normal", "S1", "Juan", "Pedro")
	add(2, "2025-08-10-Sun", "normal", "S2", "Juan", "Pedro")
	add(3, "2025-08-10-Sun", "rd", "S3", "Pedro", "Juan")
	// outside the requested period, must not count
	add(4, "2025-07-01-Tue", "normal", "S4", "Juan", "Pedro")
	return rows
}

func TestBuildDraftSeedsAttendanceFromPivot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM employee").
		WithArgs(int64(1)).
		WillReturnRows(employeeRow(""))
	mock.ExpectQuery("SELECT (.+) FROM dispatch").
		WillReturnRows(dispatchRows())

	svc := PayrollService{
		Dispatch:  repositories.DispatchRepository{DB: db},
		Strips:    repositories.PayStripRepository{DB: db},
		Employees: repositories.EmployeeRepository{DB: db},
	}
	admin := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleAdmin}

	p, err := svc.BuildDraft(admin, 1, "2025-08-15", "2025-08-01", "2025-08-15")
	if err != nil {
		t.Fatalf("draft error: %v", err)
	}

	// Juan drove S1 and S2 on normal days and rode courier on S3 (rest
	// day); the July run is outside the period
	if p.Normal != 2 {
		t.Fatalf("normal = %d, want 2", p.Normal)
	}
	if p.RD != 1 {
		t.Fatalf("rd = %d, want 1", p.RD)
	}
	if p.EquivWD != 3 {
		t.Fatalf("equiv_wd = %v, want 3", p.EquivWD)
	}
	if p.Basic != 5000 || p.SSS != 250 || p.Philhealth != 150 || p.PagIbig != 100 {
		t.Fatalf("pay/deduction components not copied from profile: %+v", p)
	}
	if p.EmployeeName != "Juan D. Cruz" || p.EmployeeID != "EMP-01" {
		t.Fatalf("identity not copied from profile: %q / %q", p.EmployeeName, p.EmployeeID)
	}
	if p.NetPay != p.TotalPay-p.TotalDeduct {
		t.Fatalf("net pay not finalized: %+v", p)
	}
	if p.ID != 0 {
		t.Fatalf("draft must not be persisted, got id %d", p.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
