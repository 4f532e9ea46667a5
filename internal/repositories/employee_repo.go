package repositories

import (
	"database/sql"

	intconfig "dispatchledger/internal/config"
	"dispatchledger/internal/domain"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func (r EmployeeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const employeeColumns = `
	id,
	COALESCE(full_name,''),
	COALESCE(first_name,''),
	COALESCE(middle_name,''),
	COALESCE(last_name,''),
	COALESCE(extn_name,''),
	COALESCE(birthday,''),
	COALESCE(gender,''),
	COALESCE(house_no,0),
	COALESCE(lot_no,0),
	COALESCE(block_no,''),
	COALESCE(sub_division,''),
	COALESCE(purok,''),
	COALESCE(brgy,''),
	COALESCE(district,''),
	COALESCE(city,''),
	COALESCE(province,''),
	COALESCE(zip_code,''),
	COALESCE(employee_id,'?'),
	COALESCE(date_hired,''),
	COALESCE(date_resigned,''),
	COALESCE(employment_status,'?'),
	COALESCE(position,'?'),
	COALESCE(` + "`rank`" + `,'?'),
	COALESCE(sss_no,'?'),
	COALESCE(philhealth_no,'?'),
	COALESCE(pag_ibig_no,'?'),
	COALESCE(sss_prem,0),
	COALESCE(philhealth_prem,0),
	COALESCE(pag_ibig_prem,0),
	COALESCE(cash_adv,0),
	COALESCE(ca_date,'?'),
	COALESCE(ca_deduction,0),
	COALESCE(ca_remaining,0),
	COALESCE(basic,0),
	COALESCE(allowance1,0),
	COALESCE(allowance2,0),
	COALESCE(allowance3,0)`

func scanEmployee(row interface{ Scan(...any) error }) (domain.EmployeeProfile, error) {
	var e domain.EmployeeProfile
	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.FirstName,
		&e.MiddleName,
		&e.LastName,
		&e.ExtnName,
		&e.Birthday,
		&e.Gender,
		&e.HouseNo,
		&e.LotNo,
		&e.BlockNo,
		&e.SubDivision,
		&e.Purok,
		&e.Brgy,
		&e.District,
		&e.City,
		&e.Province,
		&e.ZipCode,
		&e.EmployeeID,
		&e.DateHired,
		&e.DateResigned,
		&e.EmploymentStatus,
		&e.Position,
		&e.Rank,
		&e.SSSNo,
		&e.PhilhealthNo,
		&e.PagIbigNo,
		&e.SSSPrem,
		&e.PhilhealthPrem,
		&e.PagIbigPrem,
		&e.CashAdv,
		&e.CADate,
		&e.CADeduction,
		&e.CARemaining,
		&e.Basic,
		&e.Allowance1,
		&e.Allowance2,
		&e.Allowance3,
	)
	return e, err
}

func (r EmployeeRepository) Create(e domain.EmployeeProfile) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO employee
		  (full_name, first_name, middle_name, last_name, extn_name, birthday, gender,
		   house_no, lot_no, block_no, sub_division, purok, brgy, district, city, province, zip_code,
		   employee_id, date_hired, date_resigned, employment_status, position, `+"`rank`"+`,
		   sss_no, philhealth_no, pag_ibig_no, sss_prem, philhealth_prem, pag_ibig_prem,
		   cash_adv, ca_date, ca_deduction, ca_remaining,
		   basic, allowance1, allowance2, allowance3)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		e.FullName, e.FirstName, e.MiddleName, e.LastName, e.ExtnName, e.Birthday, e.Gender,
		e.HouseNo, e.LotNo, e.BlockNo, e.SubDivision, e.Purok, e.Brgy, e.District, e.City, e.Province, e.ZipCode,
		e.EmployeeID, e.DateHired, e.DateResigned, e.EmploymentStatus, e.Position, e.Rank,
		e.SSSNo, e.PhilhealthNo, e.PagIbigNo, e.SSSPrem, e.PhilhealthPrem, e.PagIbigPrem,
		e.CashAdv, e.CADate, e.CADeduction, e.CARemaining,
		e.Basic, e.Allowance1, e.Allowance2, e.Allowance3,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EmployeeRepository) GetByID(id int64) (domain.EmployeeProfile, error) {
	row := r.db().QueryRow(`SELECT `+employeeColumns+` FROM employee WHERE id=? LIMIT 1`, id)
	return scanEmployee(row)
}

// UpdatePersonal writes the fields an encoder may edit: identity and
// address, plus the re-derived full name.
func (r EmployeeRepository) UpdatePersonal(e domain.EmployeeProfile) error {
	_, err := r.db().Exec(`
		UPDATE employee SET
		  full_name=?, first_name=?, middle_name=?, last_name=?, extn_name=?, birthday=?, gender=?,
		  house_no=?, lot_no=?, block_no=?, sub_division=?, purok=?, brgy=?, district=?, city=?, province=?, zip_code=?
		WHERE id=?
	`,
		e.FullName, e.FirstName, e.MiddleName, e.LastName, e.ExtnName, e.Birthday, e.Gender,
		e.HouseNo, e.LotNo, e.BlockNo, e.SubDivision, e.Purok, e.Brgy, e.District, e.City, e.Province, e.ZipCode,
		e.ID,
	)
	return err
}

// UpdateCompany writes the admin-only fields: company info, benefits and
// compensation.
func (r EmployeeRepository) UpdateCompany(e domain.EmployeeProfile) error {
	_, err := r.db().Exec(`
		UPDATE employee SET
		  employee_id=?, date_hired=?, date_resigned=?, employment_status=?, position=?, `+"`rank`"+`=?,
		  sss_no=?, philhealth_no=?, pag_ibig_no=?, sss_prem=?, philhealth_prem=?, pag_ibig_prem=?,
		  basic=?, allowance1=?, allowance2=?, allowance3=?
		WHERE id=?
	`,
		e.EmployeeID, e.DateHired, e.DateResigned, e.EmploymentStatus, e.Position, e.Rank,
		e.SSSNo, e.PhilhealthNo, e.PagIbigNo, e.SSSPrem, e.PhilhealthPrem, e.PagIbigPrem,
		e.Basic, e.Allowance1, e.Allowance2, e.Allowance3,
		e.ID,
	)
	return err
}

func (r EmployeeRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM employee WHERE id=?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns all profiles ordered by first name, matching the order
// the dispatch entry form offers driver/courier choices in.
func (r EmployeeRepository) List() ([]domain.EmployeeProfile, error) {
	rows, err := r.db().Query(`SELECT ` + employeeColumns + ` FROM employee ORDER BY first_name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.EmployeeProfile{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
