package services

import (
	"database/sql"
	"errors"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/payroll"
	"dispatchledger/internal/repositories"
	"dispatchledger/internal/utils"
)

const dispatchListLimit = 20

// DispatchInput carries the editable dispatch fields. Derived fields
// (km, audit stamp, pay-period markers) are never taken from input.
type DispatchInput struct {
	DispatchDate string `json:"dispatch_date"`
	WDCode       string `json:"wd_code"`
	SlipNo       string `json:"slip_no"`
	Route        string `json:"route"`
	Area         string `json:"area"`
	OdoStart     int    `json:"odo_start"`
	OdoEnd       int    `json:"odo_end"`
	CBM          string `json:"cbm"`
	Qty          string `json:"qty"`
	Drops        string `json:"drops"`
	Rate         string `json:"rate"`
	PlateNo      string `json:"plate_no"`
	Driver       string `json:"driver"`
	Courier      string `json:"courier"`
}

type DispatchService struct {
	Repo repositories.DispatchRepository
}

func (s DispatchService) validate(in DispatchInput) (DispatchInput, error) {
	date, err := utils.NormalizeLedgerDate(in.DispatchDate)
	if err != nil {
		return in, domain.ValidationError{Field: "dispatch_date", Msg: "not a valid date"}
	}
	in.DispatchDate = date

	if !domain.IsWorkDayCode(in.WDCode) {
		return in, domain.ValidationError{Field: "wd_code", Msg: "unknown work-day code"}
	}
	if utils.TrimOrEmpty(in.SlipNo) == "" {
		return in, domain.ValidationError{Field: "slip_no", Msg: "required"}
	}
	// The legacy app stored negative distances silently; rejected here.
	if in.OdoEnd < in.OdoStart {
		return in, domain.ValidationError{Field: "odo_end", Msg: "odometer end is before start"}
	}
	return in, nil
}

func (s DispatchService) apply(d *domain.DispatchRecord, in DispatchInput, actor domain.Identity) {
	d.DispatchDate = in.DispatchDate
	d.WDCode = in.WDCode
	d.SlipNo = utils.TrimOrEmpty(in.SlipNo)
	d.Route = utils.TitleCase(in.Route)
	d.Area = utils.TitleCase(in.Area)
	d.OdoStart = in.OdoStart
	d.OdoEnd = in.OdoEnd
	d.KM = float64(in.OdoEnd - in.OdoStart)
	d.CBM = utils.TrimOrEmpty(in.CBM)
	d.Qty = utils.TrimOrEmpty(in.Qty)
	d.Drops = utils.TrimOrEmpty(in.Drops)
	d.Rate = utils.TrimOrEmpty(in.Rate)
	d.PlateNo = utils.UpperID(in.PlateNo)
	d.Driver = utils.TitleCase(in.Driver)
	d.Courier = utils.TitleCase(in.Courier)

	// audit stamp, mandatory on every successful write
	d.EncodedOn = utils.TodayLedgerDate()
	d.EncodedBy = utils.TitleCase(actor.FirstName)
	d.EncoderID = actor.ID
}

func (s DispatchService) Create(actor domain.Identity, in DispatchInput) (domain.DispatchRecord, error) {
	if err := RequireAccess(actor, "dispatch", ActionCreate); err != nil {
		return domain.DispatchRecord{}, err
	}
	in, err := s.validate(in)
	if err != nil {
		return domain.DispatchRecord{}, err
	}

	d := domain.DispatchRecord{
		PayDay:    "-",
		InvoiceNo: "-",
		ORNo:      "-",
		ORAmt:     0,
	}
	s.apply(&d, in, actor)

	id, err := s.Repo.Create(d)
	if err != nil {
		return domain.DispatchRecord{}, err
	}
	d.ID = id
	return d, nil
}

func (s DispatchService) Get(id int64) (domain.DispatchRecord, error) {
	d, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DispatchRecord{}, domain.NotFoundError{Resource: "dispatch record"}
	}
	return d, err
}

func (s DispatchService) Update(actor domain.Identity, id int64, in DispatchInput) (domain.DispatchRecord, error) {
	if err := RequireAccess(actor, "dispatch", ActionUpdate); err != nil {
		return domain.DispatchRecord{}, err
	}
	d, err := s.Get(id)
	if err != nil {
		return domain.DispatchRecord{}, err
	}
	in, err = s.validate(in)
	if err != nil {
		return domain.DispatchRecord{}, err
	}

	// pay-period and receipt markers survive the edit untouched
	s.apply(&d, in, actor)

	if err := s.Repo.Update(d); err != nil {
		return domain.DispatchRecord{}, err
	}
	return d, nil
}

func (s DispatchService) Delete(actor domain.Identity, id int64) error {
	if err := RequireAccess(actor, "dispatch", ActionDelete); err != nil {
		return err
	}
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "dispatch record"}
	}
	return err
}

// List returns either the recent slice (no filter) or the inclusive
// date-range filtered collection, newest first. field may be
// dispatch_date or encoded_on, mirroring the legacy filter form.
func (s DispatchService) List(field, start, end string) ([]domain.DispatchRecord, error) {
	if start == "" && end == "" {
		return s.Repo.ListRecent(dispatchListLimit)
	}

	var key func(domain.DispatchRecord) string
	switch field {
	case "", "dispatch_date":
		key = func(d domain.DispatchRecord) string { return d.DispatchDate }
	case "encoded_on":
		key = func(d domain.DispatchRecord) string { return d.EncodedOn }
	default:
		return nil, domain.ValidationError{Field: "field", Msg: "must be dispatch_date or encoded_on"}
	}

	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	return payroll.FilterByDateRange(all, key, start, end)
}

// normalizeRange converts filter bounds to the stored layout so the
// lexicographic comparison sees uniform strings.
func normalizeRange(start, end string) (string, string, error) {
	var err error
	if start != "" {
		if start, err = utils.NormalizeLedgerDate(start); err != nil {
			return "", "", domain.ValidationError{Field: "start", Msg: "not a valid date"}
		}
	}
	if end != "" {
		if end, err = utils.NormalizeLedgerDate(end); err != nil {
			return "", "", domain.ValidationError{Field: "end", Msg: "not a valid date"}
		}
	}
	return start, end, nil
}
