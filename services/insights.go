package services

import (
	"fmt"
	"sort"
	"strings"

	"boataround-scraper/models"
	"boataround-scraper/utils"
)

// InsightService computes and prints fleet-level statistics over the
// assembled rows. Boats whose total price is unavailable are excluded from
// the price statistics but still counted.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(boats []*models.Boat) *models.FleetReport {
	report := &models.FleetReport{
		BoatsByMarina: make(map[string]int),
	}

	if len(boats) == 0 {
		return report
	}

	report.TotalBoats = len(boats)

	var ratedBoats []*models.Boat
	var total int

	for _, b := range boats {
		if b.Marina != "" {
			report.BoatsByMarina[b.Marina]++
		}
		if b.Rating > 0 {
			ratedBoats = append(ratedBoats, b)
		}

		if !b.TotalPrice.Valid {
			continue
		}
		price := b.TotalPrice.Value
		if report.PricedBoats == 0 {
			report.MinTotal = price
			report.MaxTotal = price
			report.MostExpensive = b
		}
		report.PricedBoats++
		total += price
		if price < report.MinTotal {
			report.MinTotal = price
		}
		if price > report.MaxTotal {
			report.MaxTotal = price
			report.MostExpensive = b
		}
	}

	if report.PricedBoats > 0 {
		report.AverageTotal = round2(float64(total) / float64(report.PricedBoats))
	}

	// Top 5 by rating
	sort.Slice(ratedBoats, func(i, j int) bool {
		return ratedBoats[i].Rating > ratedBoats[j].Rating
	})
	if len(ratedBoats) > 5 {
		ratedBoats = ratedBoats[:5]
	}
	report.TopRated = ratedBoats

	return report
}

func (s *InsightService) Print(r *models.FleetReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  ⛵ BOATAROUND SCRAPE SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Boats scraped          : \033[1m%d\033[0m\n", r.TotalBoats)
	fmt.Printf("  Boats with total price : \033[1m%d\033[0m\n", r.PricedBoats)
	fmt.Println()

	fmt.Printf("\033[1;33m  Total Price Statistics\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.PricedBoats > 0 {
		fmt.Printf("  Average : \033[1;32m%.2f €\033[0m\n", r.AverageTotal)
		fmt.Printf("  Minimum : \033[1;32m%d €\033[0m\n", r.MinTotal)
		fmt.Printf("  Maximum : \033[1;32m%d €\033[0m\n", r.MaxTotal)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	if r.MostExpensive != nil {
		fmt.Printf("\033[1;33m  Most Expensive Boat\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.MostExpensive.Name, 50))
		fmt.Printf("  Marina  : %s\n", r.MostExpensive.Marina)
		fmt.Printf("  Charter : %s\n", r.MostExpensive.Charter)
		fmt.Printf("  Total   : \033[1;31m%s €\033[0m\n", r.MostExpensive.TotalPrice)
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Top 5 Rated Boats\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopRated) == 0 {
		fmt.Printf("  No rated boats found\n")
	} else {
		for i, b := range r.TopRated {
			fmt.Printf("  \033[1m%d.\033[0m %-40s \033[1;32m%.1f ★\033[0m\n",
				i+1, truncate(b.Name, 38), b.Rating)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Boats by Marina\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.BoatsByMarina) == 0 {
		fmt.Printf("  No marina data\n")
	} else {
		type marinaCount struct {
			marina string
			count  int
		}
		var marinas []marinaCount
		for m, cnt := range r.BoatsByMarina {
			marinas = append(marinas, marinaCount{m, cnt})
		}
		sort.Slice(marinas, func(i, j int) bool {
			if marinas[i].count != marinas[j].count {
				return marinas[i].count > marinas[j].count
			}
			return marinas[i].marina < marinas[j].marina
		})
		for _, mc := range marinas {
			bar := strings.Repeat("█", mc.count)
			fmt.Printf("  %-30s %s (%d)\n", truncate(mc.marina, 28), bar, mc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
