package inventory

import (
	"time"

	"github.com/google/uuid"
)

// StockLevel is one row of a vendor's inventory report. Low is set when the
// current stock has fallen below the product's reorder threshold.
type StockLevel struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Stock        int       `json:"stock"`
	MinThreshold int       `json:"min_threshold"`
	Low          bool      `json:"low"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Report summarizes a vendor's inventory.
type Report struct {
	Items    []*StockLevel `json:"items"`
	LowCount int           `json:"low_count"`
}
