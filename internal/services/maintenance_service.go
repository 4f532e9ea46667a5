package services

import (
	"database/sql"
	"errors"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/payroll"
	"dispatchledger/internal/repositories"
	"dispatchledger/internal/utils"
)

const maintenanceListLimit = 10

type MaintenanceInput struct {
	Date          string  `json:"date"`
	PlateNo       string  `json:"plate_no"`
	Type          string  `json:"type"`
	Comment       string  `json:"comment"`
	PyesaAmt      float64 `json:"pyesa_amt"`
	ToolsAmt      float64 `json:"tools_amt"`
	ServiceCharge float64 `json:"service_charge"`
}

type MaintenanceService struct {
	Repo repositories.MaintenanceRepository
}

func (s MaintenanceService) apply(m *domain.MaintenanceRecord, in MaintenanceInput, actor domain.Identity) error {
	date, err := utils.NormalizeLedgerDate(in.Date)
	if err != nil {
		return domain.ValidationError{Field: "date", Msg: "not a valid date"}
	}
	if utils.TrimOrEmpty(in.PlateNo) == "" {
		return domain.ValidationError{Field: "plate_no", Msg: "required"}
	}

	m.Date = date
	m.PlateNo = utils.UpperID(in.PlateNo)
	m.Type = utils.TitleCase(in.Type)
	m.Comment = utils.TitleCase(in.Comment)
	m.PyesaAmt = in.PyesaAmt
	m.ToolsAmt = in.ToolsAmt
	m.ServiceCharge = in.ServiceCharge
	// total is always recomputed from the components; repeated edits
	// must not drift
	m.TotalAmt = in.PyesaAmt + in.ToolsAmt + in.ServiceCharge

	m.EncodedBy = utils.TitleCase(actor.FirstName)
	m.EncoderID = actor.ID
	return nil
}

func (s MaintenanceService) Create(actor domain.Identity, in MaintenanceInput) (domain.MaintenanceRecord, error) {
	if err := RequireAccess(actor, "maintenance", ActionCreate); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	var m domain.MaintenanceRecord
	if err := s.apply(&m, in, actor); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	id, err := s.Repo.Create(m)
	if err != nil {
		return domain.MaintenanceRecord{}, err
	}
	m.ID = id
	return m, nil
}

func (s MaintenanceService) Get(id int64) (domain.MaintenanceRecord, error) {
	m, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MaintenanceRecord{}, domain.NotFoundError{Resource: "maintenance record"}
	}
	return m, err
}

func (s MaintenanceService) Update(actor domain.Identity, id int64, in MaintenanceInput) (domain.MaintenanceRecord, error) {
	if err := RequireAccess(actor, "maintenance", ActionUpdate); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	m, err := s.Get(id)
	if err != nil {
		return domain.MaintenanceRecord{}, err
	}
	if err := s.apply(&m, in, actor); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	if err := s.Repo.Update(m); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	return m, nil
}

func (s MaintenanceService) Delete(actor domain.Identity, id int64) error {
	if err := RequireAccess(actor, "maintenance", ActionDelete); err != nil {
		return err
	}
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "maintenance record"}
	}
	return err
}

func (s MaintenanceService) List(start, end string) ([]domain.MaintenanceRecord, error) {
	if start == "" && end == "" {
		return s.Repo.ListRecent(maintenanceListLimit)
	}
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	return payroll.FilterByDateRange(all, func(m domain.MaintenanceRecord) string { return m.Date }, start, end)
}
