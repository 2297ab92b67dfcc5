package services

import "strings"

// Entry pairs a canonical field name with the phrase that identifies it
// inside a page label.
type Entry struct {
	Canonical string
	Phrase    string
}

// Dictionary is an ordered lookup table used to map arbitrary page labels to
// canonical field names.
type Dictionary []Entry

// Match returns every canonical name whose phrase occurs, case-insensitively,
// anywhere within label. An empty result means the label maps to nothing and
// should be dropped.
func (d Dictionary) Match(label string) []string {
	label = strings.ToLower(label)

	var names []string
	for _, e := range d {
		if strings.Contains(label, strings.ToLower(e.Phrase)) {
			names = append(names, e.Canonical)
		}
	}
	return names
}

// FeatureFields returns the vocabulary for the boat-info section: physical
// specifications listed as key/value rows.
func FeatureFields() Dictionary {
	return Dictionary{
		{"year", "year"},
		{"people", "people"},
		{"berths", "berths"},
		{"cabins", "cabins"},
		{"toilets", "toilets"},
		{"draught", "draught"},
		{"beam", "beam"},
		{"engine", "engine"},
		{"fuel_tank", "fuel tank"},
		{"water_tank", "water tank"},
		{"length", "length"},
	}
}

// ExtraFields returns the vocabulary for selectable add-ons and excluded
// charges.
func ExtraFields() Dictionary {
	return Dictionary{
		{"dinghy_engine", "dinghy engine"},
		{"outboard_engine", "outboard engine"},
		{"flex_cancel", "flexible cancellation"},
		{"early_checkin", "early boat check-in"},
		{"late_checkout", "late boat check-out"},
		{"skipper", "skipper"},
		{"hostess", "hostess"},
		{"pets", "pets onboard"},
		{"safety_net", "safety net"},
		{"paddle_board", "stand up paddle"},
		{"kayak", "kayak"},
		{"gennaker", "gennaker"},
		{"wifi", "wi-fi"},
		{"towels", "towels"},
		{"extra_linen", "extra bed linen"},
		{"baby_cot", "baby cot"},
		{"one_way", "one way"},
		{"comfort_pack", "comfort pack"},
		{"final_cleaning", "final cleaning"},
		{"transit_log", "transit log"},
		{"refund_deposit", "refundable security deposit"},
		{"deposit_insurance", "deposit insurance"},
	}
}
