package services

import (
	"testing"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("ana@office.ph").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AuthService{
		Users:     repositories.UserRepository{DB: db},
		JWTSecret: []byte("test-secret"),
	}

	_, _, err = svc.Register(RegisterInput{
		Email:     "ana@office.ph",
		Password:  "secret",
		FirstName: "Ana",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	// the existing row must stay untouched: no INSERT was expected and
	// none may have happened
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store access: %v", err)
	}
}

func TestRegisterCreatesEncoder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("ben@office.ph").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(5, 1))

	svc := AuthService{
		Users:     repositories.UserRepository{DB: db},
		JWTSecret: []byte("test-secret"),
	}

	user, token, err := svc.Register(RegisterInput{
		Email:     "ben@office.ph",
		Password:  "secret",
		FirstName: "Ben",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.ID != 5 {
		t.Fatalf("user id = %d, want 5", user.ID)
	}
	if user.Role != RoleEncoder {
		t.Fatalf("new users must start as encoder, got %q", user.Role)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUserNeedsAdmin(t *testing.T) {
	svc := AuthService{}
	encoder := domain.Identity{ID: 2, FirstName: "Nina", Role: RoleEncoder}

	if err := svc.DeleteUser(encoder, 5); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for encoder user delete, got %v", err)
	}
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	svc := AuthService{}
	admin := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleAdmin}

	if err := svc.DeleteUser(admin, 1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for self delete, got %v", err)
	}
}

func TestDeleteUserRemovesAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := AuthService{Users: repositories.UserRepository{DB: db}}
	admin := domain.Identity{ID: 1, FirstName: "Mara", Role: RoleAdmin}

	if err := svc.DeleteUser(admin, 5); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterRequiresBasics(t *testing.T) {
	svc := AuthService{JWTSecret: []byte("x")}
	_, _, err := svc.Register(RegisterInput{Email: "", Password: "p", FirstName: "A"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
