package models

import "strconv"

// NA is the literal written to the output for any field whose value could
// not be determined.
const NA = "NA"

// Amount is an integer price that may be unavailable. The zero value is
// "not available", which is distinct from an available amount of 0.
type Amount struct {
	Value int
	Valid bool
}

// AmountOf returns an available Amount holding n.
func AmountOf(n int) Amount {
	return Amount{Value: n, Valid: true}
}

// String renders the amount for output: the integer value, or NA when the
// amount is unavailable.
func (a Amount) String() string {
	if !a.Valid {
		return NA
	}
	return strconv.Itoa(a.Value)
}

// RawBoat holds unprocessed text captured from one detail page. Identity
// fields are always set; everything else lives in Fields keyed by canonical
// field name and is present only if a matching label was found on the page.
type RawBoat struct {
	Name    string
	Marina  string
	Charter string
	Rating  string
	URL     string

	Fields map[string]string
}

// Field returns the raw text for a canonical field, or NA if the field was
// never captured.
func (b *RawBoat) Field(name string) string {
	if v, ok := b.Fields[name]; ok {
		return v
	}
	return NA
}

// SetField records raw text under a canonical field name. A later write for
// the same name overwrites the earlier one.
func (b *RawBoat) SetField(name, value string) {
	if b.Fields == nil {
		b.Fields = make(map[string]string)
	}
	b.Fields[name] = value
}

// Boat is the assembled, fixed-schema output row.
type Boat struct {
	Name    string
	Marina  string
	Charter string
	Rating  float64

	NoRefundPrice    Amount
	PartRefundPrice  Amount
	FreeCancelPrice  Amount
	TransitLog       Amount
	RefundDeposit    Amount
	DepositInsurance Amount
	TotalPrice       Amount

	Year      string
	Engine    string
	People    string
	Cabins    string
	Toilets   string
	Draught   string
	Beam      string
	Length    string
	FuelTank  string
	WaterTank string

	URL string
}

// Columns is the output header, in the fixed order every row follows.
var Columns = []string{
	"name", "marina", "charter", "rating",
	"norefund_price", "partrefund_price", "freecancel_price",
	"transit_log", "refund_deposit", "deposit_insurance", "total_price",
	"year", "engine", "people", "cabins", "toilets",
	"draught", "beam", "length", "fuel_tank", "water_tank", "url",
}

// Record returns the row values aligned with Columns.
func (b *Boat) Record() []string {
	return []string{
		b.Name,
		b.Marina,
		b.Charter,
		strconv.FormatFloat(b.Rating, 'g', -1, 64),
		b.NoRefundPrice.String(),
		b.PartRefundPrice.String(),
		b.FreeCancelPrice.String(),
		b.TransitLog.String(),
		b.RefundDeposit.String(),
		b.DepositInsurance.String(),
		b.TotalPrice.String(),
		b.Year,
		b.Engine,
		b.People,
		b.Cabins,
		b.Toilets,
		b.Draught,
		b.Beam,
		b.Length,
		b.FuelTank,
		b.WaterTank,
		b.URL,
	}
}
