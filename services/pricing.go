package services

import (
	"regexp"
	"strconv"
	"strings"

	"boataround-scraper/models"
)

// priceRegexp captures the first run of digits and grouping separators.
var priceRegexp = regexp.MustCompile(`[\d.,]+`)

var priceStripper = strings.NewReplacer(".", "", ",", "")

// ParsePrice extracts an integer amount from free-form currency text such as
// "1.250 €" or "1,250". Grouping separators are stripped, not interpreted as
// decimal points. Text with no parsable amount (including the literal "NA")
// yields an unavailable Amount.
func ParsePrice(text string) models.Amount {
	match := priceRegexp.FindString(text)
	if match == "" {
		return models.Amount{}
	}
	n, err := strconv.Atoi(priceStripper.Replace(match))
	if err != nil {
		return models.Amount{}
	}
	return models.AmountOf(n)
}

// TotalPrice derives the aggregate price of a boat from its raw field map.
// Transit log and deposit insurance always contribute when captured; of the
// three cancellation-policy prices only the highest-priority one that was
// captured contributes (free cancellation, then partial refund, then
// non-refundable). A total of exactly 0 is reported as unavailable.
func TotalPrice(boat *models.RawBoat) models.Amount {
	sum := 0

	for _, name := range []string{"transit_log", "deposit_insurance"} {
		raw, ok := boat.Fields[name]
		if !ok || raw == models.NA {
			continue
		}
		if p := ParsePrice(raw); p.Valid {
			sum += p.Value
		}
	}

	for _, name := range []string{"freecancel_price", "partrefund_price", "norefund_price"} {
		raw, ok := boat.Fields[name]
		if !ok || raw == models.NA {
			continue
		}
		if p := ParsePrice(raw); p.Valid {
			sum += p.Value
		}
		break
	}

	if sum == 0 {
		return models.Amount{}
	}
	return models.AmountOf(sum)
}
