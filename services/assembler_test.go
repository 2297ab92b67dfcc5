package services

import (
	"testing"

	"boataround-scraper/models"
	"boataround-scraper/utils"
)

func newTestAssembler() *Assembler { return NewAssembler(utils.NewLogger()) }

func TestAssembleFullRecord(t *testing.T) {
	raw := rawBoatWith(map[string]string{
		"norefund_price":    "1.250 €",
		"partrefund_price":  "NA",
		"freecancel_price":  "NA",
		"transit_log":       "150 €",
		"deposit_insurance": "200 €",
		"year":              "2015",
		"length":            "14 m",
		"cabins":            "4",
	})

	boat, err := newTestAssembler().Assemble(raw)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if boat.Name != "Bavaria 46" || boat.Marina != "Kaštela" || boat.Charter != "Sailing Co" {
		t.Errorf("identity fields not copied: %+v", boat)
	}
	if boat.Rating != 9.2 {
		t.Errorf("Rating = %v; want 9.2", boat.Rating)
	}
	if !boat.NoRefundPrice.Valid || boat.NoRefundPrice.Value != 1250 {
		t.Errorf("NoRefundPrice = %v; want 1250", boat.NoRefundPrice)
	}
	if boat.PartRefundPrice.Valid {
		t.Errorf("PartRefundPrice = %v; want NA", boat.PartRefundPrice)
	}
	if !boat.TotalPrice.Valid || boat.TotalPrice.Value != 1600 {
		t.Errorf("TotalPrice = %v; want 1600 (1250+150+200)", boat.TotalPrice)
	}
	if boat.Length != "14 m" {
		t.Errorf("Length = %q; want %q (descriptive fields stay verbatim)", boat.Length, "14 m")
	}
}

func TestAssembleDefaultsToNA(t *testing.T) {
	boat, err := newTestAssembler().Assemble(rawBoatWith(nil))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if boat.TransitLog.Valid {
		t.Errorf("TransitLog = %v; want NA", boat.TransitLog)
	}
	for name, got := range map[string]string{
		"year":      boat.Year,
		"engine":    boat.Engine,
		"fuel_tank": boat.FuelTank,
		"beam":      boat.Beam,
	} {
		if got != models.NA {
			t.Errorf("%s = %q; want NA", name, got)
		}
	}
}

func TestAssembleMissingIdentityFails(t *testing.T) {
	raw := &models.RawBoat{Name: "Bavaria 46", Rating: "0", URL: "https://example.com/boat/1"}

	if _, err := newTestAssembler().Assemble(raw); err == nil {
		t.Error("expected error for missing marina/charter")
	}
}

func TestAssembleBadRatingFails(t *testing.T) {
	raw := rawBoatWith(nil)
	raw.Rating = "Superb"

	if _, err := newTestAssembler().Assemble(raw); err == nil {
		t.Error("expected error for uncoercible rating")
	}
}

func TestAssembleAllPreservesOrder(t *testing.T) {
	raws := []*models.RawBoat{rawBoatWith(nil), rawBoatWith(nil), rawBoatWith(nil)}
	for i, r := range raws {
		r.URL = "https://example.com/boat/" + string(rune('a'+i))
	}

	boats, err := newTestAssembler().AssembleAll(raws)
	if err != nil {
		t.Fatalf("AssembleAll: %v", err)
	}
	if len(boats) != 3 {
		t.Fatalf("got %d boats, want 3", len(boats))
	}
	for i, b := range boats {
		if b.URL != raws[i].URL {
			t.Errorf("boat %d URL = %q; want %q", i, b.URL, raws[i].URL)
		}
	}
}

func TestAssembleAllAbortsOnFailure(t *testing.T) {
	bad := rawBoatWith(nil)
	bad.Rating = "not-a-number"
	raws := []*models.RawBoat{rawBoatWith(nil), bad}

	if _, err := newTestAssembler().AssembleAll(raws); err == nil {
		t.Error("expected AssembleAll to abort on a failing boat")
	}
}
