package models

// FleetReport holds summary statistics computed over the assembled rows.
type FleetReport struct {
	TotalBoats    int
	PricedBoats   int
	AverageTotal  float64
	MinTotal      int
	MaxTotal      int
	MostExpensive *Boat
	TopRated      []*Boat
	BoatsByMarina map[string]int
}
