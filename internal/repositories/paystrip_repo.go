package repositories

import (
	"database/sql"

	intconfig "dispatchledger/internal/config"
	"dispatchledger/internal/domain"
)

type PayStripRepository struct {
	DB *sql.DB
}

func (r PayStripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const payStripColumns = `
	id,
	COALESCE(pay_day,''),
	COALESCE(start_date,''),
	COALESCE(end_date,''),
	COALESCE(employee_name,''),
	COALESCE(employee_id,''),
	COALESCE(normal,0),
	COALESCE(reg_hol,0),
	COALESCE(no_sp_hol,0),
	COALESCE(wk_sp_hol,0),
	COALESCE(rd,0),
	COALESCE(equiv_wd,0),
	COALESCE(basic,0),
	COALESCE(allowance1,0),
	COALESCE(allowance2,0),
	COALESCE(allowance3,0),
	COALESCE(pay_adj,0),
	COALESCE(pay_adj_reason,''),
	COALESCE(cash_adv,0),
	COALESCE(ca_date,''),
	COALESCE(ca_deduction,0),
	COALESCE(ca_remaining,0),
	COALESCE(sss,0),
	COALESCE(philhealth,0),
	COALESCE(pag_ibig,0),
	COALESCE(life_insurance,0),
	COALESCE(income_tax,0),
	COALESCE(total_pay,0),
	COALESCE(total_deduct,0),
	COALESCE(net_pay,0),
	COALESCE(transferred_amt1,0),
	COALESCE(transferred_amt2,0),
	COALESCE(carry_over_next_month,0),
	COALESCE(carry_over_past_month,0)`

func scanPayStrip(row interface{ Scan(...any) error }) (domain.PayStrip, error) {
	var p domain.PayStrip
	err := row.Scan(
		&p.ID,
		&p.PayDay,
		&p.StartDate,
		&p.EndDate,
		&p.EmployeeName,
		&p.EmployeeID,
		&p.Normal,
		&p.RegHol,
		&p.NoSpHol,
		&p.WkSpHol,
		&p.RD,
		&p.EquivWD,
		&p.Basic,
		&p.Allowance1,
		&p.Allowance2,
		&p.Allowance3,
		&p.PayAdj,
		&p.PayAdjReason,
		&p.CashAdv,
		&p.CADate,
		&p.CADeduction,
		&p.CARemaining,
		&p.SSS,
		&p.Philhealth,
		&p.PagIbig,
		&p.LifeInsurance,
		&p.IncomeTax,
		&p.TotalPay,
		&p.TotalDeduct,
		&p.NetPay,
		&p.TransferredAmt1,
		&p.TransferredAmt2,
		&p.CarryOverNextMonth,
		&p.CarryOverPastMonth,
	)
	return p, err
}

func (r PayStripRepository) Create(p domain.PayStrip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO pay_strip
		  (pay_day, start_date, end_date, employee_name, employee_id,
		   normal, reg_hol, no_sp_hol, wk_sp_hol, rd, equiv_wd,
		   basic, allowance1, allowance2, allowance3, pay_adj, pay_adj_reason,
		   cash_adv, ca_date, ca_deduction, ca_remaining,
		   sss, philhealth, pag_ibig, life_insurance, income_tax,
		   total_pay, total_deduct, net_pay,
		   transferred_amt1, transferred_amt2, carry_over_next_month, carry_over_past_month)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		p.PayDay, p.StartDate, p.EndDate, p.EmployeeName, p.EmployeeID,
		p.Normal, p.RegHol, p.NoSpHol, p.WkSpHol, p.RD, p.EquivWD,
		p.Basic, p.Allowance1, p.Allowance2, p.Allowance3, p.PayAdj, p.PayAdjReason,
		p.CashAdv, p.CADate, p.CADeduction, p.CARemaining,
		p.SSS, p.Philhealth, p.PagIbig, p.LifeInsurance, p.IncomeTax,
		p.TotalPay, p.TotalDeduct, p.NetPay,
		p.TransferredAmt1, p.TransferredAmt2, p.CarryOverNextMonth, p.CarryOverPastMonth,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PayStripRepository) GetByID(id int64) (domain.PayStrip, error) {
	row := r.db().QueryRow(`SELECT `+payStripColumns+` FROM pay_strip WHERE id=? LIMIT 1`, id)
	return scanPayStrip(row)
}

func (r PayStripRepository) Update(p domain.PayStrip) error {
	_, err := r.db().Exec(`
		UPDATE pay_strip SET
		  pay_day=?, start_date=?, end_date=?, employee_name=?, employee_id=?,
		  normal=?, reg_hol=?, no_sp_hol=?, wk_sp_hol=?, rd=?, equiv_wd=?,
		  basic=?, allowance1=?, allowance2=?, allowance3=?, pay_adj=?, pay_adj_reason=?,
		  cash_adv=?, ca_date=?, ca_deduction=?, ca_remaining=?,
		  sss=?, philhealth=?, pag_ibig=?, life_insurance=?, income_tax=?,
		  total_pay=?, total_deduct=?, net_pay=?,
		  transferred_amt1=?, transferred_amt2=?, carry_over_next_month=?, carry_over_past_month=?
		WHERE id=?
	`,
		p.PayDay, p.StartDate, p.EndDate, p.EmployeeName, p.EmployeeID,
		p.Normal, p.RegHol, p.NoSpHol, p.WkSpHol, p.RD, p.EquivWD,
		p.Basic, p.Allowance1, p.Allowance2, p.Allowance3, p.PayAdj, p.PayAdjReason,
		p.CashAdv, p.CADate, p.CADeduction, p.CARemaining,
		p.SSS, p.Philhealth, p.PagIbig, p.LifeInsurance, p.IncomeTax,
		p.TotalPay, p.TotalDeduct, p.NetPay,
		p.TransferredAmt1, p.TransferredAmt2, p.CarryOverNextMonth, p.CarryOverPastMonth,
		p.ID,
	)
	return err
}

func (r PayStripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM pay_strip WHERE id=?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r PayStripRepository) List() ([]domain.PayStrip, error) {
	rows, err := r.db().Query(`SELECT ` + payStripColumns + ` FROM pay_strip ORDER BY pay_day DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PayStrip{}
	for rows.Next() {
		p, err := scanPayStrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
