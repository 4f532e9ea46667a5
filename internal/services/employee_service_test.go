package services

import (
	"testing"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/repositories"
	"dispatchledger/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		first, middle, last, extn string
		want                      string
	}{
		{"juan", "dela", "cruz", "", "Juan D. Cruz"},
		{"juan", "dela", "cruz", "jr.", "Juan D. Cruz Jr."},
		{"MARIA", "s", "SANTOS", "", "Maria S. Santos"},
		{"ana", "", "reyes", "", "Ana Reyes"},
	}
	for _, c := range cases {
		if got := FullName(c.first, c.middle, c.last, c.extn); got != c.want {
			t.Fatalf("FullName(%q,%q,%q,%q) = %q, want %q", c.first, c.middle, c.last, c.extn, got, c.want)
		}
	}
}

func TestEmployeeCreateNormalizesAndDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO employee").
		WillReturnResult(sqlmock.NewResult(9, 1))

	svc := EmployeeService{Repo: repositories.EmployeeRepository{DB: db}}
	actor := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleEncoder}

	e, err := svc.Create(actor, EmployeePersonalInput{
		FirstName:  "juan",
		MiddleName: "dela",
		LastName:   "cruz",
		Birthday:   "1990-01-15",
		Gender:     "male",
		City:       "davao city",
		ZipCode:    "8000a",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if e.FullName != "Juan D. Cruz" {
		t.Fatalf("full_name = %q, want derived Juan D. Cruz", e.FullName)
	}
	if e.Birthday != "1990-01-15-Mon" {
		t.Fatalf("birthday = %q, want canonical ledger form", e.Birthday)
	}
	if e.City != "Davao City" || e.Gender != "Male" {
		t.Fatalf("text fields not title-cased: %q / %q", e.City, e.Gender)
	}
	if e.ZipCode != "8000A" {
		t.Fatalf("zip = %q, want upper-cased", e.ZipCode)
	}
	// company fields stay as placeholders until an admin edit
	if e.EmployeeID != "?" || e.Position != "?" || e.EmploymentStatus != "?" {
		t.Fatalf("company placeholders missing: %q %q %q", e.EmployeeID, e.Position, e.EmploymentStatus)
	}
	if e.DateHired == "" {
		t.Fatalf("date_hired should default to today")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeResignedStatusStampsDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM employee").
		WithArgs(int64(1)).
		WillReturnRows(employeeRow(""))
	mock.ExpectExec("UPDATE employee").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := EmployeeService{Repo: repositories.EmployeeRepository{DB: db}}
	admin := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleAdmin}

	e, err := svc.UpdateCompany(admin, 1, EmployeeCompanyInput{
		EmployeeID:       "emp-01",
		DateHired:        "2024-01-02",
		EmploymentStatus: "resigned",
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if e.EmploymentStatus != "RESIGNED" {
		t.Fatalf("status = %q, want RESIGNED", e.EmploymentStatus)
	}
	if e.DateResigned != utils.TodayLedgerDate() {
		t.Fatalf("date_resigned = %q, want today's stamp", e.DateResigned)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeActiveStatusClearsResignedDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// the profile carries a stale resignation date from an earlier edit
	mock.ExpectQuery("SELECT (.+) FROM employee").
		WithArgs(int64(1)).
		WillReturnRows(employeeRow("2025-01-31-Fri"))
	mock.ExpectExec("UPDATE employee").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := EmployeeService{Repo: repositories.EmployeeRepository{DB: db}}
	admin := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleAdmin}

	e, err := svc.UpdateCompany(admin, 1, EmployeeCompanyInput{
		EmployeeID:       "emp-01",
		DateHired:        "2024-01-02",
		EmploymentStatus: "regular",
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if e.DateResigned != "" {
		t.Fatalf("date_resigned = %q, want cleared for a non-resigned status", e.DateResigned)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeAdminEditNeedsAdmin(t *testing.T) {
	svc := EmployeeService{}
	encoder := domain.Identity{ID: 2, FirstName: "Nina", Role: RoleEncoder}

	_, err := svc.UpdateCompany(encoder, 1, EmployeeCompanyInput{})
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for encoder admin-edit, got %v", err)
	}
}
