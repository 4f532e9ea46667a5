package services

import (
	"testing"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDispatchCreateDerivesAndStamps(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO dispatch").
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := DispatchService{Repo: repositories.DispatchRepository{DB: db}}
	actor := domain.Identity{ID: 2, FirstName: "nina", Role: RoleEncoder}

	rec, err := svc.Create(actor, DispatchInput{
		DispatchDate: "2025-08-01",
		WDCode:       "normal",
		SlipNo:       " S-100 ",
		Route:        "davao city",
		Area:         "toril DISTRICT",
		OdoStart:     100,
		OdoEnd:       150,
		CBM:          "3",
		Qty:          "25",
		Drops:        "10",
		Rate:         "1500",
		PlateNo:      "abc 123",
		Driver:       "juan",
		Courier:      "pedro",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if rec.ID != 7 {
		t.Fatalf("id = %d, want 7", rec.ID)
	}
	if rec.KM != 50 {
		t.Fatalf("km = %v, want 50 (odo_end - odo_start)", rec.KM)
	}
	if rec.DispatchDate != "2025-08-01-Fri" {
		t.Fatalf("dispatch_date = %q, want canonical ledger form", rec.DispatchDate)
	}
	if rec.Route != "Davao City" || rec.Area != "Toril District" {
		t.Fatalf("text fields not title-cased: %q / %q", rec.Route, rec.Area)
	}
	if rec.PlateNo != "ABC 123" {
		t.Fatalf("plate = %q, want upper-cased", rec.PlateNo)
	}
	if rec.Driver != "Juan" || rec.Courier != "Pedro" {
		t.Fatalf("names not normalized: %q / %q", rec.Driver, rec.Courier)
	}
	if rec.EncodedBy != "Nina" || rec.EncoderID != 2 {
		t.Fatalf("audit stamp missing: encoded_by=%q encoder_id=%d", rec.EncodedBy, rec.EncoderID)
	}
	if rec.EncodedOn == "" {
		t.Fatalf("encoded_on must be stamped")
	}
	if rec.PayDay != "-" || rec.InvoiceNo != "-" || rec.ORNo != "-" {
		t.Fatalf("new record pay/receipt markers should default to '-'")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDispatchCreateRejectsBackwardOdometer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := DispatchService{Repo: repositories.DispatchRepository{DB: db}}
	actor := domain.Identity{ID: 2, FirstName: "Nina", Role: RoleEncoder}

	_, err = svc.Create(actor, DispatchInput{
		DispatchDate: "2025-08-01",
		WDCode:       "normal",
		SlipNo:       "S-1",
		OdoStart:     500,
		OdoEnd:       450,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// nothing may reach the store on a rejected write
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store access: %v", err)
	}
}

func TestDispatchCreateRejectsUnknownWDCode(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := DispatchService{Repo: repositories.DispatchRepository{DB: db}}
	actor := domain.Identity{ID: 2, FirstName: "Nina", Role: RoleEncoder}

	_, err = svc.Create(actor, DispatchInput{
		DispatchDate: "2025-08-01",
		WDCode:       "someday",
		SlipNo:       "S-1",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown wd_code, got %v", err)
	}
}

func TestDispatchDeleteNeedsAdmin(t *testing.T) {
	svc := DispatchService{}
	encoder := domain.Identity{ID: 2, FirstName: "Nina", Role: RoleEncoder}

	err := svc.Delete(encoder, 1)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for encoder delete, got %v", err)
	}
}

func TestDispatchListRejectsBadFilterField(t *testing.T) {
	svc := DispatchService{}
	_, err := svc.List("plate_no", "2025-08-01", "2025-08-31")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unfilterable field, got %v", err)
	}
}
