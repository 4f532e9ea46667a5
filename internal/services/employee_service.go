package services

import (
	"database/sql"
	"errors"
	"strings"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/repositories"
	"dispatchledger/internal/utils"
)

// EmployeePersonalInput is what an encoder may set: identity and address.
type EmployeePersonalInput struct {
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	ExtnName    string `json:"extn_name"`
	Birthday    string `json:"birthday"`
	Gender      string `json:"gender"`
	HouseNo     int    `json:"house_no"`
	LotNo       int    `json:"lot_no"`
	BlockNo     string `json:"block_no"`
	SubDivision string `json:"sub_division"`
	Purok       string `json:"purok"`
	Brgy        string `json:"brgy"`
	District    string `json:"district"`
	City        string `json:"city"`
	Province    string `json:"province"`
	ZipCode     string `json:"zip_code"`
}

// EmployeeCompanyInput is the admin-only slice: company info, benefits
// and compensation.
type EmployeeCompanyInput struct {
	EmployeeID       string  `json:"employee_id"`
	DateHired        string  `json:"date_hired"`
	EmploymentStatus string  `json:"employment_status"`
	Position         string  `json:"position"`
	Rank             string  `json:"rank"`
	SSSNo            string  `json:"sss_no"`
	PhilhealthNo     string  `json:"philhealth_no"`
	PagIbigNo        string  `json:"pag_ibig_no"`
	SSSPrem          float64 `json:"sss_prem"`
	PhilhealthPrem   float64 `json:"philhealth_prem"`
	PagIbigPrem      float64 `json:"pag_ibig_prem"`
	Basic            float64 `json:"basic"`
	Allowance1       float64 `json:"allowance1"`
	Allowance2       float64 `json:"allowance2"`
	Allowance3       float64 `json:"allowance3"`
}

type EmployeeService struct {
	Repo repositories.EmployeeRepository
}

// FullName derives the display name stored alongside the name parts:
// "First M. Last" plus the suffix when there is one. Callers must never
// persist a profile without re-deriving it.
func FullName(first, middle, last, extn string) string {
	name := utils.TitleCase(first)
	if mi := utils.Initial(middle); mi != "" {
		name += " " + mi + "."
	}
	name += " " + utils.TitleCase(last)
	if extn = utils.TrimOrEmpty(extn); extn != "" {
		name += " " + utils.TitleCase(extn)
	}
	return strings.TrimSpace(name)
}

func (s EmployeeService) applyPersonal(e *domain.EmployeeProfile, in EmployeePersonalInput) error {
	if utils.TrimOrEmpty(in.FirstName) == "" || utils.TrimOrEmpty(in.LastName) == "" {
		return domain.ValidationError{Msg: "first and last name are required"}
	}
	birthday, err := utils.NormalizeLedgerDate(in.Birthday)
	if err != nil {
		return domain.ValidationError{Field: "birthday", Msg: "not a valid date"}
	}

	e.FirstName = utils.TitleCase(in.FirstName)
	e.MiddleName = utils.TitleCase(in.MiddleName)
	e.LastName = utils.TitleCase(in.LastName)
	e.ExtnName = utils.TitleCase(in.ExtnName)
	e.FullName = FullName(in.FirstName, in.MiddleName, in.LastName, in.ExtnName)
	e.Birthday = birthday
	e.Gender = utils.TitleCase(in.Gender)

	e.HouseNo = in.HouseNo
	e.LotNo = in.LotNo
	e.BlockNo = utils.TrimOrEmpty(in.BlockNo)
	e.SubDivision = utils.TitleCase(in.SubDivision)
	e.Purok = utils.TitleCase(in.Purok)
	e.Brgy = utils.TitleCase(in.Brgy)
	e.District = utils.TitleCase(in.District)
	e.City = utils.TitleCase(in.City)
	e.Province = utils.TitleCase(in.Province)
	e.ZipCode = utils.UpperID(in.ZipCode)
	return nil
}

func (s EmployeeService) Create(actor domain.Identity, in EmployeePersonalInput) (domain.EmployeeProfile, error) {
	if err := RequireAccess(actor, "employee", ActionCreate); err != nil {
		return domain.EmployeeProfile{}, err
	}

	// company fields start as placeholders until an admin fills them in,
	// same defaults the legacy entry form used
	e := domain.EmployeeProfile{
		EmployeeID:       "?",
		DateHired:        utils.TodayLedgerDate(),
		EmploymentStatus: "?",
		Position:         "?",
		Rank:             "?",
		SSSNo:            "?",
		PhilhealthNo:     "?",
		PagIbigNo:        "?",
		CADate:           "?",
	}
	if err := s.applyPersonal(&e, in); err != nil {
		return domain.EmployeeProfile{}, err
	}

	id, err := s.Repo.Create(e)
	if err != nil {
		return domain.EmployeeProfile{}, err
	}
	e.ID = id
	return e, nil
}

func (s EmployeeService) Get(id int64) (domain.EmployeeProfile, error) {
	e, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EmployeeProfile{}, domain.NotFoundError{Resource: "employee"}
	}
	return e, err
}

func (s EmployeeService) UpdatePersonal(actor domain.Identity, id int64, in EmployeePersonalInput) (domain.EmployeeProfile, error) {
	if err := RequireAccess(actor, "employee", ActionUpdate); err != nil {
		return domain.EmployeeProfile{}, err
	}
	e, err := s.Get(id)
	if err != nil {
		return domain.EmployeeProfile{}, err
	}
	if err := s.applyPersonal(&e, in); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if err := s.Repo.UpdatePersonal(e); err != nil {
		return domain.EmployeeProfile{}, err
	}
	return e, nil
}

// UpdateCompany is the admin-only edit of employment, benefit and
// compensation fields. Setting status to Resigned stamps the resignation
// date; any other status clears it.
func (s EmployeeService) UpdateCompany(actor domain.Identity, id int64, in EmployeeCompanyInput) (domain.EmployeeProfile, error) {
	if err := RequireAccess(actor, "employee", ActionAdminEdit); err != nil {
		return domain.EmployeeProfile{}, err
	}
	e, err := s.Get(id)
	if err != nil {
		return domain.EmployeeProfile{}, err
	}

	dateHired, err := utils.NormalizeLedgerDate(in.DateHired)
	if err != nil {
		return domain.EmployeeProfile{}, domain.ValidationError{Field: "date_hired", Msg: "not a valid date"}
	}

	e.EmployeeID = utils.UpperID(in.EmployeeID)
	e.DateHired = dateHired
	e.EmploymentStatus = utils.UpperID(in.EmploymentStatus)
	e.Position = utils.UpperID(in.Position)
	e.Rank = utils.UpperID(in.Rank)
	e.SSSNo = utils.UpperID(in.SSSNo)
	e.PhilhealthNo = utils.UpperID(in.PhilhealthNo)
	e.PagIbigNo = utils.UpperID(in.PagIbigNo)
	e.SSSPrem = in.SSSPrem
	e.PhilhealthPrem = in.PhilhealthPrem
	e.PagIbigPrem = in.PagIbigPrem
	e.Basic = in.Basic
	e.Allowance1 = in.Allowance1
	e.Allowance2 = in.Allowance2
	e.Allowance3 = in.Allowance3

	if strings.EqualFold(utils.TrimOrEmpty(in.EmploymentStatus), "resigned") {
		e.DateResigned = utils.TodayLedgerDate()
	} else {
		e.DateResigned = ""
	}

	if err := s.Repo.UpdateCompany(e); err != nil {
		return domain.EmployeeProfile{}, err
	}
	return e, nil
}

func (s EmployeeService) Delete(actor domain.Identity, id int64) error {
	if err := RequireAccess(actor, "employee", ActionDelete); err != nil {
		return err
	}
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "employee"}
	}
	return err
}

func (s EmployeeService) List() ([]domain.EmployeeProfile, error) {
	return s.Repo.List()
}
