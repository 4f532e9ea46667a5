package repositories

import (
	"database/sql"

	intconfig "dispatchledger/internal/config"
	"dispatchledger/internal/domain"
)

type AdminExpenseRepository struct {
	DB *sql.DB
}

func (r AdminExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const adminExpenseColumns = `
	id,
	COALESCE(date,''),
	COALESCE(agency,''),
	COALESCE(office,''),
	COALESCE(frequency,''),
	COALESCE(description,''),
	COALESCE(amount,0),
	COALESCE(encoded_by,''),
	COALESCE(encoder_id,0)`

func scanAdminExpense(row interface{ Scan(...any) error }) (domain.AdminExpenseRecord, error) {
	var a domain.AdminExpenseRecord
	err := row.Scan(
		&a.ID,
		&a.Date,
		&a.Agency,
		&a.Office,
		&a.Frequency,
		&a.Description,
		&a.Amount,
		&a.EncodedBy,
		&a.EncoderID,
	)
	return a, err
}

func (r AdminExpenseRepository) Create(a domain.AdminExpenseRecord) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO admin_expense
		  (date, agency, office, frequency, description, amount, encoded_by, encoder_id)
		VALUES (?,?,?,?,?,?,?,?)
	`, a.Date, a.Agency, a.Office, a.Frequency, a.Description, a.Amount, a.EncodedBy, a.EncoderID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r AdminExpenseRepository) GetByID(id int64) (domain.AdminExpenseRecord, error) {
	row := r.db().QueryRow(`SELECT `+adminExpenseColumns+` FROM admin_expense WHERE id=? LIMIT 1`, id)
	return scanAdminExpense(row)
}

func (r AdminExpenseRepository) Update(a domain.AdminExpenseRecord) error {
	_, err := r.db().Exec(`
		UPDATE admin_expense SET
		  date=?, agency=?, office=?, frequency=?, description=?, amount=?,
		  encoded_by=?, encoder_id=?
		WHERE id=?
	`, a.Date, a.Agency, a.Office, a.Frequency, a.Description, a.Amount,
		a.EncodedBy, a.EncoderID, a.ID)
	return err
}

func (r AdminExpenseRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM admin_expense WHERE id=?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r AdminExpenseRepository) List() ([]domain.AdminExpenseRecord, error) {
	rows, err := r.db().Query(`SELECT ` + adminExpenseColumns + ` FROM admin_expense ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.AdminExpenseRecord{}
	for rows.Next() {
		a, err := scanAdminExpense(rows)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AdminExpenseRepository) ListRecent(limit int) ([]domain.AdminExpenseRecord, error) {
	rows, err := r.db().Query(`SELECT `+adminExpenseColumns+` FROM admin_expense ORDER BY date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.AdminExpenseRecord{}
	for rows.Next() {
		a, err := scanAdminExpense(rows)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
