package services

import (
	"database/sql"
	"errors"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/payroll"
	"dispatchledger/internal/repositories"
	"dispatchledger/internal/utils"
)

const adminExpenseListLimit = 10

type AdminExpenseInput struct {
	Date        string  `json:"date"`
	Agency      string  `json:"agency"`
	Office      string  `json:"office"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type AdminExpenseService struct {
	Repo repositories.AdminExpenseRepository
}

func (s AdminExpenseService) apply(a *domain.AdminExpenseRecord, in AdminExpenseInput, actor domain.Identity) error {
	date, err := utils.NormalizeLedgerDate(in.Date)
	if err != nil {
		return domain.ValidationError{Field: "date", Msg: "not a valid date"}
	}
	if utils.TrimOrEmpty(in.Agency) == "" {
		return domain.ValidationError{Field: "agency", Msg: "required"}
	}

	a.Date = date
	a.Agency = utils.UpperID(in.Agency)
	a.Office = utils.TitleCase(in.Office)
	a.Frequency = utils.TitleCase(in.Frequency)
	a.Description = utils.TitleCase(in.Description)
	a.Amount = in.Amount

	a.EncodedBy = utils.TitleCase(actor.FirstName)
	a.EncoderID = actor.ID
	return nil
}

func (s AdminExpenseService) Create(actor domain.Identity, in AdminExpenseInput) (domain.AdminExpenseRecord, error) {
	if err := RequireAccess(actor, "admin_expense", ActionCreate); err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	var a domain.AdminExpenseRecord
	if err := s.apply(&a, in, actor); err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	id, err := s.Repo.Create(a)
	if err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	a.ID = id
	return a, nil
}

func (s AdminExpenseService) Get(id int64) (domain.AdminExpenseRecord, error) {
	a, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AdminExpenseRecord{}, domain.NotFoundError{Resource: "admin expense"}
	}
	return a, err
}

func (s AdminExpenseService) Update(actor domain.Identity, id int64, in AdminExpenseInput) (domain.AdminExpenseRecord, error) {
	if err := RequireAccess(actor, "admin_expense", ActionUpdate); err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	a, err := s.Get(id)
	if err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	if err := s.apply(&a, in, actor); err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	if err := s.Repo.Update(a); err != nil {
		return domain.AdminExpenseRecord{}, err
	}
	return a, nil
}

func (s AdminExpenseService) Delete(actor domain.Identity, id int64) error {
	if err := RequireAccess(actor, "admin_expense", ActionDelete); err != nil {
		return err
	}
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "admin expense"}
	}
	return err
}

func (s AdminExpenseService) List(start, end string) ([]domain.AdminExpenseRecord, error) {
	if start == "" && end == "" {
		return s.Repo.ListRecent(adminExpenseListLimit)
	}
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	return payroll.FilterByDateRange(all, func(a domain.AdminExpenseRecord) string { return a.Date }, start, end)
}
