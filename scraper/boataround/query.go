package boataround

import (
	"net/url"
	"strconv"

	"boataround-scraper/config"
)

// Query holds the search filters for one crawl, immutable once built. Values
// are passed to the site verbatim: range-style filters already carry the
// suffix convention ("N-" at least, "-N" at most) and multi-valued filters
// become repeated parameters.
type Query struct {
	values url.Values
}

// NewQuery builds a Query from the configured search filters. Empty filters
// are omitted.
func NewQuery(cfg *config.Config) Query {
	v := url.Values{}

	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("destinations", cfg.Destinations)
	set("checkIn", cfg.CheckIn)
	set("checkOut", cfg.CheckOut)
	set("category", cfg.Category)
	set("cabins", cfg.Cabins)
	set("price", cfg.Price)
	set("year", cfg.Year)
	set("sail", cfg.Sail)
	set("boatLength", cfg.BoatLength)
	set("services", cfg.Services)
	set("sort", cfg.Sort)

	for _, e := range cfg.Equipment {
		v.Add("equipment", e)
	}
	for _, c := range cfg.Cockpit {
		v.Add("cockpit", c)
	}

	return Query{values: v}
}

// SearchURL returns the absolute search URL for the given page. The page
// parameter is only added beyond the first page.
func (q Query) SearchURL(base string, page int) string {
	v := url.Values{}
	for key, vals := range q.values {
		v[key] = append([]string(nil), vals...)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return base + "/search?" + v.Encode()
}
