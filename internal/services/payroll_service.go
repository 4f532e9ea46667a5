package services

import (
	"database/sql"
	"errors"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/payroll"
	"dispatchledger/internal/repositories"
	"dispatchledger/internal/utils"
)

type PayrollService struct {
	Dispatch  repositories.DispatchRepository
	Strips    repositories.PayStripRepository
	Employees repositories.EmployeeRepository
}

// Summary builds the payroll pivot over the whole dispatch collection,
// optionally restricted to an inclusive dispatch-date range.
func (s PayrollService) Summary(start, end string) (payroll.Summary, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return payroll.Summary{}, err
	}

	records, err := s.Dispatch.List()
	if err != nil {
		return payroll.Summary{}, err
	}
	if start != "" || end != "" {
		records, err = payroll.FilterByDateRange(records,
			func(d domain.DispatchRecord) string { return d.DispatchDate }, start, end)
		if err != nil {
			return payroll.Summary{}, err
		}
	}
	return payroll.SummarizeDispatchCounts(records), nil
}

// finalize recomputes the derived pay-strip summary fields. Totals are
// always derived from the components so repeated edits cannot drift.
func finalize(p *domain.PayStrip) {
	p.TotalPay = p.Basic + p.Allowance1 + p.Allowance2 + p.Allowance3 + p.PayAdj
	p.TotalDeduct = p.CADeduction + p.SSS + p.Philhealth + p.PagIbig + p.LifeInsurance + p.IncomeTax
	p.NetPay = p.TotalPay - p.TotalDeduct
}

func (s PayrollService) validateStrip(p domain.PayStrip) (domain.PayStrip, error) {
	var err error
	if p.PayDay, err = utils.NormalizeLedgerDate(p.PayDay); err != nil {
		return p, domain.ValidationError{Field: "pay_day", Msg: "not a valid date"}
	}
	if p.StartDate, err = utils.NormalizeLedgerDate(p.StartDate); err != nil {
		return p, domain.ValidationError{Field: "start_date", Msg: "not a valid date"}
	}
	if p.EndDate, err = utils.NormalizeLedgerDate(p.EndDate); err != nil {
		return p, domain.ValidationError{Field: "end_date", Msg: "not a valid date"}
	}
	if p.StartDate > p.EndDate {
		return p, domain.ValidationError{Field: "pay period", Msg: "start is after end"}
	}
	if utils.TrimOrEmpty(p.EmployeeName) == "" {
		return p, domain.ValidationError{Field: "employee_name", Msg: "required"}
	}
	p.EmployeeName = utils.TitleCase(p.EmployeeName)
	p.EmployeeID = utils.UpperID(p.EmployeeID)
	return p, nil
}

func (s PayrollService) CreateStrip(actor domain.Identity, p domain.PayStrip) (domain.PayStrip, error) {
	if err := RequireAccess(actor, "pay_strip", ActionCreate); err != nil {
		return domain.PayStrip{}, err
	}
	p, err := s.validateStrip(p)
	if err != nil {
		return domain.PayStrip{}, err
	}
	finalize(&p)

	id, err := s.Strips.Create(p)
	if err != nil {
		return domain.PayStrip{}, err
	}
	p.ID = id
	return p, nil
}

func (s PayrollService) GetStrip(id int64) (domain.PayStrip, error) {
	p, err := s.Strips.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PayStrip{}, domain.NotFoundError{Resource: "pay strip"}
	}
	return p, err
}

func (s PayrollService) UpdateStrip(actor domain.Identity, id int64, p domain.PayStrip) (domain.PayStrip, error) {
	if err := RequireAccess(actor, "pay_strip", ActionUpdate); err != nil {
		return domain.PayStrip{}, err
	}
	if _, err := s.GetStrip(id); err != nil {
		return domain.PayStrip{}, err
	}
	p, err := s.validateStrip(p)
	if err != nil {
		return domain.PayStrip{}, err
	}
	p.ID = id
	finalize(&p)

	if err := s.Strips.Update(p); err != nil {
		return domain.PayStrip{}, err
	}
	return p, nil
}

func (s PayrollService) DeleteStrip(actor domain.Identity, id int64) error {
	if err := RequireAccess(actor, "pay_strip", ActionDelete); err != nil {
		return err
	}
	err := s.Strips.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "pay strip"}
	}
	return err
}

func (s PayrollService) ListStrips() ([]domain.PayStrip, error) {
	return s.Strips.List()
}

// BuildDraft assembles an unsaved pay strip for one employee and period:
// attendance counts come from the dispatch pivot (driver and courier
// runs combined), pay components from the profile. The caller reviews,
// adjusts and then creates it; nothing is persisted here.
func (s PayrollService) BuildDraft(actor domain.Identity, employeeID int64, payDay, start, end string) (domain.PayStrip, error) {
	if err := RequireAccess(actor, "pay_strip", ActionCreate); err != nil {
		return domain.PayStrip{}, err
	}

	e, err := s.Employees.GetByID(employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PayStrip{}, domain.NotFoundError{Resource: "employee"}
	}
	if err != nil {
		return domain.PayStrip{}, err
	}

	sum, err := s.Summary(start, end)
	if err != nil {
		return domain.PayStrip{}, err
	}
	// dispatch rows carry the worker's first name
	counts := sum.PersonCounts(e.FirstName)

	p := domain.PayStrip{
		PayDay:       payDay,
		StartDate:    start,
		EndDate:      end,
		EmployeeName: e.FullName,
		EmployeeID:   e.EmployeeID,

		Normal:  counts[domain.WDNormal],
		RegHol:  counts[domain.WDRegularHoliday],
		NoSpHol: counts[domain.WDNonWorkSpHoliday],
		WkSpHol: counts[domain.WDWorkSpHoliday],
		RD:      counts[domain.WDRestDay],

		Basic:      e.Basic,
		Allowance1: e.Allowance1,
		Allowance2: e.Allowance2,
		Allowance3: e.Allowance3,

		CashAdv:     e.CashAdv,
		CADate:      e.CADate,
		CADeduction: e.CADeduction,
		CARemaining: e.CARemaining,
		SSS:         e.SSSPrem,
		Philhealth:  e.PhilhealthPrem,
		PagIbig:     e.PagIbigPrem,
	}
	p.EquivWD = float64(p.Normal + p.RegHol + p.NoSpHol + p.WkSpHol + p.RD)

	p, err = s.validateStrip(p)
	if err != nil {
		return domain.PayStrip{}, err
	}
	finalize(&p)
	return p, nil
}
