package storage

import "boataround-scraper/models"

// BoatWriter is the interface any storage backend must satisfy. Write
// receives the full, final batch of rows in discovery order.
type BoatWriter interface {
	Write(boats []*models.Boat) error
	Close() error
}
