package repositories

import (
	"database/sql"

	intconfig "dispatchledger/internal/config"
	"dispatchledger/internal/domain"
)

type MaintenanceRepository struct {
	DB *sql.DB
}

func (r MaintenanceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const maintenanceColumns = `
	id,
	COALESCE(date,''),
	COALESCE(plate_no,''),
	COALESCE(type,''),
	COALESCE(comment,''),
	COALESCE(pyesa_amt,0),
	COALESCE(tools_amt,0),
	COALESCE(service_charge,0),
	COALESCE(total_amt,0),
	COALESCE(encoded_by,''),
	COALESCE(encoder_id,0)`

func scanMaintenance(row interface{ Scan(...any) error }) (domain.MaintenanceRecord, error) {
	var m domain.MaintenanceRecord
	err := row.Scan(
		&m.ID,
		&m.Date,
		&m.PlateNo,
		&m.Type,
		&m.Comment,
		&m.PyesaAmt,
		&m.ToolsAmt,
		&m.ServiceCharge,
		&m.TotalAmt,
		&m.EncodedBy,
		&m.EncoderID,
	)
	return m, err
}

func (r MaintenanceRepository) Create(m domain.MaintenanceRecord) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO maintenance
		  (date, plate_no, type, comment, pyesa_amt, tools_amt, service_charge, total_amt, encoded_by, encoder_id)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`, m.Date, m.PlateNo, m.Type, m.Comment, m.PyesaAmt, m.ToolsAmt, m.ServiceCharge, m.TotalAmt, m.EncodedBy, m.EncoderID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r MaintenanceRepository) GetByID(id int64) (domain.MaintenanceRecord, error) {
	row := r.db().QueryRow(`SELECT `+maintenanceColumns+` FROM maintenance WHERE id=? LIMIT 1`, id)
	return scanMaintenance(row)
}

func (r MaintenanceRepository) Update(m domain.MaintenanceRecord) error {
	_, err := r.db().Exec(`
		UPDATE maintenance SET
		  date=?, plate_no=?, type=?, comment=?,
		  pyesa_amt=?, tools_amt=?, service_charge=?, total_amt=?,
		  encoded_by=?, encoder_id=?
		WHERE id=?
	`, m.Date, m.PlateNo, m.Type, m.Comment,
		m.PyesaAmt, m.ToolsAmt, m.ServiceCharge, m.TotalAmt,
		m.EncodedBy, m.EncoderID, m.ID)
	return err
}

func (r MaintenanceRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM maintenance WHERE id=?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r MaintenanceRepository) List() ([]domain.MaintenanceRecord, error) {
	rows, err := r.db().Query(`SELECT ` + maintenanceColumns + ` FROM maintenance ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MaintenanceRecord{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r MaintenanceRepository) ListRecent(limit int) ([]domain.MaintenanceRecord, error) {
	rows, err := r.db().Query(`SELECT `+maintenanceColumns+` FROM maintenance ORDER BY date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MaintenanceRecord{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
