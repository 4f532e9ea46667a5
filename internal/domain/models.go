package domain

// WorkDayCode classifies a calendar day for pay-rate purposes. The
// stored values match the legacy ledger data.
const (
	WDNormal           = "normal"
	WDRegularHoliday   = "reg_hol"
	WDNonWorkSpHoliday = "no_sp_hol"
	WDWorkSpHoliday    = "wk_sp_hol"
	WDRestDay          = "rd"

	// WDUnknown buckets records whose work-day code is missing or
	// unrecognized so aggregation never drops them silently.
	WDUnknown = "unknown"
)

var workDayCodes = map[string]bool{
	WDNormal:           true,
	WDRegularHoliday:   true,
	WDNonWorkSpHoliday: true,
	WDWorkSpHoliday:    true,
	WDRestDay:          true,
}

// IsWorkDayCode reports whether s is one of the five known codes.
func IsWorkDayCode(s string) bool { return workDayCodes[s] }

// Identity is the authenticated actor behind a request. It replaces the
// legacy global current-user state: handlers resolve it from the JWT and
// pass it down explicitly for audit stamping and access checks.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Role      string `json:"role"`
}

type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
}

// DispatchRecord is one delivery run, identified by its slip number.
// km is derived (odo_end - odo_start) and never taken from input.
type DispatchRecord struct {
	ID           int64   `json:"id"`
	DispatchDate string  `json:"dispatch_date"`
	WDCode       string  `json:"wd_code"`
	SlipNo       string  `json:"slip_no"`
	Route        string  `json:"route"`
	Area         string  `json:"area"`
	OdoStart     int     `json:"odo_start"`
	OdoEnd       int     `json:"odo_end"`
	KM           float64 `json:"km"`
	CBM          string  `json:"cbm"`
	Qty          string  `json:"qty"`
	Drops        string  `json:"drops"`
	Rate         string  `json:"rate"`
	PlateNo      string  `json:"plate_no"`
	Driver       string  `json:"driver"`
	Courier      string  `json:"courier"`
	PayDay       string  `json:"pay_day"`
	InvoiceNo    string  `json:"invoice_no"`
	ORNo         string  `json:"or_no"`
	ORAmt        float64 `json:"or_amt"`
	EncodedOn    string  `json:"encoded_on"`
	EncodedBy    string  `json:"encoded_by"`
	EncoderID    int64   `json:"encoder_id"`
}

// MaintenanceRecord is one vehicle expense entry. TotalAmt is always the
// sum of the three cost components.
type MaintenanceRecord struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	PlateNo       string  `json:"plate_no"`
	Type          string  `json:"type"`
	Comment       string  `json:"comment"`
	PyesaAmt      float64 `json:"pyesa_amt"`
	ToolsAmt      float64 `json:"tools_amt"`
	ServiceCharge float64 `json:"service_charge"`
	TotalAmt      float64 `json:"total_amt"`
	EncodedBy     string  `json:"encoded_by"`
	EncoderID     int64   `json:"encoder_id"`
}

type AdminExpenseRecord struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Agency      string  `json:"agency"`
	Office      string  `json:"office"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	EncodedBy   string  `json:"encoded_by"`
	EncoderID   int64   `json:"encoder_id"`
}

type EmployeeProfile struct {
	ID int64 `json:"id"`

	// personal
	FullName   string `json:"full_name"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	ExtnName   string `json:"extn_name"`
	Birthday   string `json:"birthday"`
	Gender     string `json:"gender"`

	// address
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

	// company
	EmployeeID       string `json:"employee_id"`
	DateHired        string `json:"date_hired"`
	DateResigned     string `json:"date_resigned"`
	EmploymentStatus string `json:"employment_status"`
	Position         string `json:"position"`
	Rank             string `json:"rank"`

	// benefits
	SSSNo          string  `json:"sss_no"`
	PhilhealthNo   string  `json:"philhealth_no"`
	PagIbigNo      string  `json:"pag_ibig_no"`
	SSSPrem        float64 `json:"sss_prem"`
	PhilhealthPrem float64 `json:"philhealth_prem"`
	PagIbigPrem    float64 `json:"pag_ibig_prem"`

	// cash advance
	CashAdv     float64 `json:"cash_adv"`
	CADate      string  `json:"ca_date"`
	CADeduction float64 `json:"ca_deduction"`
	CARemaining float64 `json:"ca_remaining"`

	// compensation
	Basic      float64 `json:"basic"`
	Allowance1 float64 `json:"allowance1"`
	Allowance2 float64 `json:"allowance2"`
	Allowance3 float64 `json:"allowance3"`
}

// PayStrip is a payroll-period snapshot. It is deliberately independent
// of EmployeeProfile: a strip freezes the numbers that were true for the
// period even if the profile changes later.
type PayStrip struct {
	ID           int64  `json:"id"`
	PayDay       string `json:"pay_day"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	EmployeeName string `json:"employee_name"`
	EmployeeID   string `json:"employee_id"`

	// attendance
	Normal  int     `json:"normal"`
	RegHol  int     `json:"reg_hol"`
	NoSpHol int     `json:"no_sp_hol"`
	WkSpHol int     `json:"wk_sp_hol"`
	RD      int     `json:"rd"`
	EquivWD float64 `json:"equiv_wd"`

	// pay
	Basic        float64 `json:"basic"`
	Allowance1   float64 `json:"allowance1"`
	Allowance2   float64 `json:"allowance2"`
	Allowance3   float64 `json:"allowance3"`
	PayAdj       float64 `json:"pay_adj"`
	PayAdjReason string  `json:"pay_adj_reason"`

	// deductions
	CashAdv       float64 `json:"cash_adv"`
	CADate        string  `json:"ca_date"`
	CADeduction   float64 `json:"ca_deduction"`
	CARemaining   float64 `json:"ca_remaining"`
	SSS           float64 `json:"sss"`
	Philhealth    float64 `json:"philhealth"`
	PagIbig       float64 `json:"pag_ibig"`
	LifeInsurance float64 `json:"life_insurance"`
	IncomeTax     float64 `json:"income_tax"`

	// summary
	TotalPay           float64 `json:"total_pay"`
	TotalDeduct        float64 `json:"total_deduct"`
	NetPay             float64 `json:"net_pay"`
	TransferredAmt1    float64 `json:"transferred_amt1"`
	TransferredAmt2    float64 `json:"transferred_amt2"`
	CarryOverNextMonth float64 `json:"carry_over_next_month"`
	CarryOverPastMonth float64 `json:"carry_over_past_month"`
}
