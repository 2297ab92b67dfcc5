package boataround

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"boataround-scraper/models"
	"boataround-scraper/services"
)

// PageCount reads the declared page total from the paginator. A missing
// paginator (zero or one result pages) yields 0.
func PageCount(doc *goquery.Document) int {
	text := strings.TrimSpace(doc.Find(pageCountSelector).First().Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}

// ListingLinks returns the detail-page URL of every result on the page, in
// document order, resolved against base. No de-duplication is performed.
func ListingLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	doc.Find(resultLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})
	return links
}

// ExtractBoat assembles the raw field map for one rendered detail page. The
// stages run in fixed order: identity, reservation policies, boat info,
// extras, excluded charges. A missing identity field fails the boat; every
// other absence leaves the field uncaptured.
func ExtractBoat(doc *goquery.Document, pageURL string, features, extras services.Dictionary) (*models.RawBoat, error) {
	boat := &models.RawBoat{
		URL:    pageURL,
		Rating: "0",
		Fields: make(map[string]string),
	}

	boat.Name = strings.TrimSpace(doc.Find(nameSelector).First().Text())
	boat.Marina = strings.TrimSpace(doc.Find(marinaSelector).First().Text())

	// The charter row reads "Charter: <name>"; keep the part after the colon.
	charter := doc.Find(charterSelector).First().Text()
	if _, name, ok := strings.Cut(charter, ":"); ok {
		boat.Charter = strings.TrimSpace(name)
	}

	if boat.Name == "" || boat.Marina == "" || boat.Charter == "" {
		return nil, fmt.Errorf("extract: %s: missing identity fields "+
			"(name=%q marina=%q charter=%q)", pageURL, boat.Name, boat.Marina, boat.Charter)
	}

	if rating := strings.TrimSpace(doc.Find(ratingSelector).First().Text()); rating != "" {
		boat.Rating = rating
	}

	// Reservation policies. All three buckets are pre-seeded so boats
	// offering fewer policies keep NA for the rest.
	boat.SetField("norefund_price", models.NA)
	boat.SetField("partrefund_price", models.NA)
	boat.SetField("freecancel_price", models.NA)
	doc.Find(policyRowSelector).Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find(policyLabelSelector).First().Text())
		price := strings.TrimSpace(row.Find(policyPriceSelector).First().Text())
		if strings.Contains(label, noRefundLabel) {
			boat.SetField("norefund_price", price)
		}
		if strings.Contains(label, partRefundLabel) {
			boat.SetField("partrefund_price", price)
		}
		if strings.Contains(label, freeCancelLabel) {
			boat.SetField("freecancel_price", price)
		}
	})

	// Boat info rows
	doc.Find(infoRowSelector).Each(func(_ int, row *goquery.Selection) {
		key := row.Find(infoKeySelector).First().Text()
		value := strings.TrimSpace(row.Find(infoValueSelector).First().Text())
		for _, name := range features.Match(key) {
			boat.SetField(name, value)
		}
	})

	// Selectable extras
	doc.Find(extrasRowSelector).Each(func(_ int, row *goquery.Selection) {
		setExtra(boat, row, extras)
	})

	// Excluded charges overwrite same-named extras; the section may be absent.
	doc.Find(excludedRowSelector).Each(func(_ int, row *goquery.Selection) {
		setExtra(boat, row, extras)
	})

	return boat, nil
}

func setExtra(boat *models.RawBoat, row *goquery.Selection, extras services.Dictionary) {
	key := row.Find(extraNameSelector).First().Text()
	price := strings.TrimSpace(row.Find(extraPriceSelector).First().Text())
	for _, name := range extras.Match(key) {
		boat.SetField(name, price)
	}
}
