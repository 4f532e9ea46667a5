package repositories

import (
	"database/sql"

	intconfig "dispatchledger/internal/config"
	"dispatchledger/internal/domain"
)

type DispatchRepository struct {
	DB *sql.DB
}

func (r DispatchRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const dispatchColumns = `
	id,
	COALESCE(dispatch_date,''),
	COALESCE(wd_code,''),
	COALESCE(slip_no,''),
	COALESCE(route,''),
	COALESCE(area,''),
	COALESCE(odo_start,0),
	COALESCE(odo_end,0),
	COALESCE(km,0),
	COALESCE(cbm,''),
	COALESCE(qty,''),
	COALESCE(drops,''),
	COALESCE(rate,''),
	COALESCE(plate_no,''),
	COALESCE(driver,''),
	COALESCE(courier,''),
	COALESCE(pay_day,'-'),
	COALESCE(invoice_no,'-'),
	COALESCE(or_no,'-'),
	COALESCE(or_amt,0),
	COALESCE(encoded_on,''),
	COALESCE(encoded_by,''),
	COALESCE(encoder_id,0)`

func scanDispatch(row interface{ Scan(...any) error }) (domain.DispatchRecord, error) {
	var d domain.DispatchRecord
	err := row.Scan(
		&d.ID,
		&d.DispatchDate,
		&d.WDCode,
		&d.SlipNo,
		&d.Route,
		&d.Area,
		&d.OdoStart,
		&d.OdoEnd,
		&d.KM,
		&d.CBM,
		&d.Qty,
		&d.Drops,
		&d.Rate,
		&d.PlateNo,
		&d.Driver,
		&d.Courier,
		&d.PayDay,
		&d.InvoiceNo,
		&d.ORNo,
		&d.ORAmt,
		&d.EncodedOn,
		&d.EncodedBy,
		&d.EncoderID,
	)
	return d, err
}

func (r DispatchRepository) Create(d domain.DispatchRecord) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO dispatch
		  (dispatch_date, wd_code, slip_no, route, area, odo_start, odo_end, km,
		   cbm, qty, drops, rate, plate_no, driver, courier, pay_day,
		   invoice_no, or_no, or_amt, encoded_on, encoded_by, encoder_id)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		d.DispatchDate, d.WDCode, d.SlipNo, d.Route, d.Area, d.OdoStart, d.OdoEnd, d.KM,
		d.CBM, d.Qty, d.Drops, d.Rate, d.PlateNo, d.Driver, d.Courier, d.PayDay,
		d.InvoiceNo, d.ORNo, d.ORAmt, d.EncodedOn, d.EncodedBy, d.EncoderID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r DispatchRepository) GetByID(id int64) (domain.DispatchRecord, error) {
	row := r.db().QueryRow(`SELECT `+dispatchColumns+` FROM dispatch WHERE id=? LIMIT 1`, id)
	return scanDispatch(row)
}

func (r DispatchRepository) Update(d domain.DispatchRecord) error {
	res, err := r.db().Exec(`
		UPDATE dispatch SET
		  dispatch_date=?, wd_code=?, slip_no=?, route=?, area=?,
		  odo_start=?, odo_end=?, km=?, cbm=?, qty=?, drops=?, rate=?,
		  plate_no=?, driver=?, courier=?, pay_day=?, invoice_no=?, or_no=?, or_amt=?,
		  encoded_on=?, encoded_by=?, encoder_id=?
		WHERE id=?
	`,
		d.DispatchDate, d.WDCode, d.SlipNo, d.Route, d.Area,
		d.OdoStart, d.OdoEnd, d.KM, d.CBM, d.Qty, d.Drops, d.Rate,
		d.PlateNo, d.Driver, d.Courier, d.PayDay, d.InvoiceNo, d.ORNo, d.ORAmt,
		d.EncodedOn, d.EncodedBy, d.EncoderID,
		d.ID,
	)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		if _, gerr := r.GetByID(d.ID); gerr == sql.ErrNoRows {
			return sql.ErrNoRows
		}
	}
	return nil
}

func (r DispatchRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM dispatch WHERE id=?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns the whole dispatch collection. The payroll pivot and the
// in-memory date filters read everything per request; fine at this
// scale, revisit before the table grows past a few thousand rows.
func (r DispatchRepository) List() ([]domain.DispatchRecord, error) {
	rows, err := r.db().Query(`SELECT ` + dispatchColumns + ` FROM dispatch ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DispatchRecord{}
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListRecent returns the newest records by dispatch date, for the
// default unfiltered listing.
func (r DispatchRepository) ListRecent(limit int) ([]domain.DispatchRecord, error) {
	rows, err := r.db().Query(`SELECT `+dispatchColumns+` FROM dispatch ORDER BY dispatch_date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DispatchRecord{}
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
