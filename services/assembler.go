package services

import (
	"fmt"
	"strconv"

	"boataround-scraper/models"
	"boataround-scraper/utils"
)

// Assembler converts raw per-boat field maps into fixed-schema output rows.
type Assembler struct {
	logger *utils.Logger
}

// NewAssembler creates an Assembler with the given logger.
func NewAssembler(logger *utils.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// Assemble builds the output row for one boat. Identity fields are required
// and the rating must coerce to a float; either failing fails the boat.
// Every other field defaults to NA when it was never captured.
func (a *Assembler) Assemble(raw *models.RawBoat) (*models.Boat, error) {
	if raw.Name == "" || raw.Marina == "" || raw.Charter == "" {
		return nil, fmt.Errorf("assemble: %s: missing identity fields", raw.URL)
	}

	rating, err := strconv.ParseFloat(raw.Rating, 64)
	if err != nil {
		return nil, fmt.Errorf("assemble: %s: rating %q: %w", raw.URL, raw.Rating, err)
	}

	return &models.Boat{
		Name:    raw.Name,
		Marina:  raw.Marina,
		Charter: raw.Charter,
		Rating:  rating,

		NoRefundPrice:    ParsePrice(raw.Field("norefund_price")),
		PartRefundPrice:  ParsePrice(raw.Field("partrefund_price")),
		FreeCancelPrice:  ParsePrice(raw.Field("freecancel_price")),
		TransitLog:       ParsePrice(raw.Field("transit_log")),
		RefundDeposit:    ParsePrice(raw.Field("refund_deposit")),
		DepositInsurance: ParsePrice(raw.Field("deposit_insurance")),

		// The total is derived from the raw text, not the parsed columns.
		TotalPrice: TotalPrice(raw),

		Year:      raw.Field("year"),
		Engine:    raw.Field("engine"),
		People:    raw.Field("people"),
		Cabins:    raw.Field("cabins"),
		Toilets:   raw.Field("toilets"),
		Draught:   raw.Field("draught"),
		Beam:      raw.Field("beam"),
		Length:    raw.Field("length"),
		FuelTank:  raw.Field("fuel_tank"),
		WaterTank: raw.Field("water_tank"),

		URL: raw.URL,
	}, nil
}

// AssembleAll converts every raw boat in order. Any single failure aborts the
// whole batch.
func (a *Assembler) AssembleAll(raws []*models.RawBoat) ([]*models.Boat, error) {
	boats := make([]*models.Boat, 0, len(raws))
	for _, raw := range raws {
		boat, err := a.Assemble(raw)
		if err != nil {
			return nil, err
		}
		boats = append(boats, boat)
	}

	a.logger.Info("[assembler] Assembled %d boats", len(boats))
	return boats, nil
}
