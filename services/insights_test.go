package services

import (
	"testing"

	"boataround-scraper/models"
	"boataround-scraper/utils"
)

func sampleBoats() []*models.Boat {
	return []*models.Boat{
		{Name: "Bavaria 46", Marina: "Kaštela", Rating: 9.2, TotalPrice: models.AmountOf(1600)},
		{Name: "Oceanis 38", Marina: "Split", Rating: 8.7, TotalPrice: models.AmountOf(900)},
		{Name: "Dufour 390", Marina: "Kaštela", Rating: 9.6, TotalPrice: models.AmountOf(2100)},
		{Name: "Sun Odyssey", Marina: "Zadar", Rating: 0, TotalPrice: models.Amount{}},
	}
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleBoats())

	if r.TotalBoats != 4 {
		t.Errorf("TotalBoats = %d; want 4", r.TotalBoats)
	}
	if r.PricedBoats != 3 {
		t.Errorf("PricedBoats = %d; want 3 (NA totals excluded)", r.PricedBoats)
	}
}

func TestInsightPriceStats(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleBoats())

	if r.MinTotal != 900 || r.MaxTotal != 2100 {
		t.Errorf("Min/MaxTotal = %d/%d; want 900/2100", r.MinTotal, r.MaxTotal)
	}
	wantAvg := 1533.33
	if r.AverageTotal != wantAvg {
		t.Errorf("AverageTotal = %.2f; want %.2f", r.AverageTotal, wantAvg)
	}
	if r.MostExpensive == nil || r.MostExpensive.Name != "Dufour 390" {
		t.Errorf("MostExpensive = %+v; want Dufour 390", r.MostExpensive)
	}
}

func TestInsightTopRated(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleBoats())

	if len(r.TopRated) != 3 {
		t.Fatalf("TopRated len = %d; want 3 (unrated boats excluded)", len(r.TopRated))
	}
	if r.TopRated[0].Rating != 9.6 {
		t.Errorf("TopRated[0].Rating = %v; want 9.6", r.TopRated[0].Rating)
	}
}

func TestInsightMarinaGrouping(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleBoats())

	if r.BoatsByMarina["Kaštela"] != 2 {
		t.Errorf("Kaštela count = %d; want 2", r.BoatsByMarina["Kaštela"])
	}
	if r.BoatsByMarina["Zadar"] != 1 {
		t.Errorf("Zadar count = %d; want 1", r.BoatsByMarina["Zadar"])
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(nil)
	if r.TotalBoats != 0 || r.MostExpensive != nil {
		t.Errorf("expected empty report for empty input, got %+v", r)
	}
}
