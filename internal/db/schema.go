package db

import "database/sql"

// EnsureSchema creates the ledger tables when they do not exist yet.
// Dates are stored as fixed-format strings (YYYY-MM-DD-Www) on purpose:
// existing data uses that layout and lexicographic order matches
// chronological order, so the column type stays VARCHAR.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(100) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			middle_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'encoder'
		)`,
		`CREATE TABLE IF NOT EXISTS dispatch (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			dispatch_date VARCHAR(100) NOT NULL,
			wd_code VARCHAR(100) NOT NULL,
			slip_no VARCHAR(100) NOT NULL,
			route VARCHAR(100) NOT NULL,
			area VARCHAR(250) NOT NULL DEFAULT '',
			odo_start INT NOT NULL DEFAULT 0,
			odo_end INT NOT NULL DEFAULT 0,
			km DOUBLE NOT NULL DEFAULT 0,
			cbm VARCHAR(100) NOT NULL,
			qty VARCHAR(100) NOT NULL,
			drops VARCHAR(100) NOT NULL,
			rate VARCHAR(100) NOT NULL,
			plate_no VARCHAR(100) NOT NULL,
			driver VARCHAR(100) NOT NULL,
			courier VARCHAR(100) NOT NULL,
			pay_day VARCHAR(100) NOT NULL DEFAULT '-',
			invoice_no VARCHAR(100) NOT NULL DEFAULT '-',
			or_no VARCHAR(100) NOT NULL DEFAULT '-',
			or_amt DOUBLE NOT NULL DEFAULT 0,
			encoded_on VARCHAR(100) NOT NULL,
			encoded_by VARCHAR(100) NOT NULL DEFAULT '',
			encoder_id BIGINT NOT NULL DEFAULT 0,
			INDEX idx_dispatch_date (dispatch_date)
		)`,
		`CREATE TABLE IF NOT EXISTS maintenance (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			date VARCHAR(100) NOT NULL,
			plate_no VARCHAR(100) NOT NULL,
			type VARCHAR(100) NOT NULL,
			comment VARCHAR(250) NOT NULL DEFAULT '',
			pyesa_amt DOUBLE NOT NULL DEFAULT 0,
			tools_amt DOUBLE NOT NULL DEFAULT 0,
			service_charge DOUBLE NOT NULL DEFAULT 0,
			total_amt DOUBLE NOT NULL DEFAULT 0,
			encoded_by VARCHAR(100) NOT NULL DEFAULT '',
			encoder_id BIGINT NOT NULL DEFAULT 0,
			INDEX idx_maintenance_date (date)
		)`,
		`CREATE TABLE IF NOT EXISTS admin_expense (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			date VARCHAR(100) NOT NULL,
			agency VARCHAR(100) NOT NULL,
			office VARCHAR(100) NOT NULL,
			frequency VARCHAR(100) NOT NULL,
			description VARCHAR(250) NOT NULL DEFAULT '',
			amount DOUBLE NOT NULL DEFAULT 0,
			encoded_by VARCHAR(100) NOT NULL DEFAULT '',
			encoder_id BIGINT NOT NULL DEFAULT 0,
			INDEX idx_admin_expense_date (date)
		)`,
		`CREATE TABLE IF NOT EXISTS employee (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			full_name VARCHAR(100) NOT NULL DEFAULT '',
			first_name VARCHAR(100) NOT NULL,
			middle_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			extn_name VARCHAR(100) NOT NULL DEFAULT '',
			birthday VARCHAR(100) NOT NULL DEFAULT '',
			gender VARCHAR(100) NOT NULL DEFAULT '',
			house_no INT NOT NULL DEFAULT 0,
			lot_no INT NOT NULL DEFAULT 0,
			block_no VARCHAR(100) NOT NULL DEFAULT '',
			sub_division VARCHAR(100) NOT NULL DEFAULT '',
			purok VARCHAR(100) NOT NULL DEFAULT '',
			brgy VARCHAR(100) NOT NULL DEFAULT '',
			district VARCHAR(100) NOT NULL DEFAULT '',
			city VARCHAR(100) NOT NULL DEFAULT '',
			province VARCHAR(100) NOT NULL DEFAULT '',
			zip_code VARCHAR(100) NOT NULL DEFAULT '',
			employee_id VARCHAR(100) NOT NULL DEFAULT '?',
			date_hired VARCHAR(100) NOT NULL DEFAULT '',
			date_resigned VARCHAR(100) NOT NULL DEFAULT '',
			employment_status VARCHAR(100) NOT NULL DEFAULT '?',
			position VARCHAR(100) NOT NULL DEFAULT '?',
			` + "`rank`" + ` VARCHAR(100) NOT NULL DEFAULT '?',
			sss_no VARCHAR(100) NOT NULL DEFAULT '?',
			philhealth_no VARCHAR(100) NOT NULL DEFAULT '?',
			pag_ibig_no VARCHAR(100) NOT NULL DEFAULT '?',
			sss_prem DOUBLE NOT NULL DEFAULT 0,
			philhealth_prem DOUBLE NOT NULL DEFAULT 0,
			pag_ibig_prem DOUBLE NOT NULL DEFAULT 0,
			cash_adv DOUBLE NOT NULL DEFAULT 0,
			ca_date VARCHAR(100) NOT NULL DEFAULT '?',
			ca_deduction DOUBLE NOT NULL DEFAULT 0,
			ca_remaining DOUBLE NOT NULL DEFAULT 0,
			basic DOUBLE NOT NULL DEFAULT 0,
			allowance1 DOUBLE NOT NULL DEFAULT 0,
			allowance2 DOUBLE NOT NULL DEFAULT 0,
			allowance3 DOUBLE NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS pay_strip (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			pay_day VARCHAR(100) NOT NULL,
			start_date VARCHAR(100) NOT NULL,
			end_date VARCHAR(100) NOT NULL,
			employee_name VARCHAR(100) NOT NULL,
			employee_id VARCHAR(100) NOT NULL,
			normal INT NOT NULL DEFAULT 0,
			reg_hol INT NOT NULL DEFAULT 0,
			no_sp_hol INT NOT NULL DEFAULT 0,
			wk_sp_hol INT NOT NULL DEFAULT 0,
			rd INT NOT NULL DEFAULT 0,
			equiv_wd DOUBLE NOT NULL DEFAULT 0,
			basic DOUBLE NOT NULL DEFAULT 0,
			allowance1 DOUBLE NOT NULL DEFAULT 0,
			allowance2 DOUBLE NOT NULL DEFAULT 0,
			allowance3 DOUBLE NOT NULL DEFAULT 0,
			pay_adj DOUBLE NOT NULL DEFAULT 0,
			pay_adj_reason VARCHAR(250) NOT NULL DEFAULT '',
			cash_adv DOUBLE NOT NULL DEFAULT 0,
			ca_date VARCHAR(100) NOT NULL DEFAULT '',
			ca_deduction DOUBLE NOT NULL DEFAULT 0,
			ca_remaining DOUBLE NOT NULL DEFAULT 0,
			sss DOUBLE NOT NULL DEFAULT 0,
			philhealth DOUBLE NOT NULL DEFAULT 0,
			pag_ibig DOUBLE NOT NULL DEFAULT 0,
			life_insurance DOUBLE NOT NULL DEFAULT 0,
			income_tax DOUBLE NOT NULL DEFAULT 0,
			total_pay DOUBLE NOT NULL DEFAULT 0,
			total_deduct DOUBLE NOT NULL DEFAULT 0,
			net_pay DOUBLE NOT NULL DEFAULT 0,
			transferred_amt1 DOUBLE NOT NULL DEFAULT 0,
			transferred_amt2 DOUBLE NOT NULL DEFAULT 0,
			carry_over_next_month DOUBLE NOT NULL DEFAULT 0,
			carry_over_past_month DOUBLE NOT NULL DEFAULT 0,
			INDEX idx_pay_strip_pay_day (pay_day)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
