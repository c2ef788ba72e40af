package stock

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

var (
	ErrInvalidType     = errors.New("adjustment type must be added, removed or adjusted")
	ErrInvalidQuantity = errors.New("quantity must be a non-negative number")
)

// Adjustment is a validated stock mutation request.
type Adjustment struct {
	Type     string
	Quantity float64
	Notes    string
}

// NewAdjustment validates the raw inputs of an adjustment request.
// "set" is accepted as an alias for "adjusted".
func NewAdjustment(adjType string, quantity float64, notes string) (Adjustment, error) {
	if adjType == "set" {
		adjType = models.ActivityAdjusted
	}
	switch adjType {
	case models.ActivityAdded, models.ActivityRemoved, models.ActivityAdjusted:
	default:
		return Adjustment{}, ErrInvalidType
	}
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Adjustment{}, ErrInvalidQuantity
	}
	return Adjustment{Type: adjType, Quantity: quantity, Notes: notes}, nil
}

// Apply mutates the item's stock level according to the adjustment, reruns the
// classifier, stamps LastUpdated, and returns the log entry describing the
// change. The returned log entry carries no ID or timestamp; the repository
// assigns both when it persists item and entry in one transaction.
func Apply(item models.InventoryItem, adj Adjustment, actor models.User, now time.Time) (models.InventoryItem, models.ActivityLog) {
	switch adj.Type {
	case models.ActivityAdded:
		item.CurrentStock += adj.Quantity
	case models.ActivityRemoved:
		item.CurrentStock -= adj.Quantity
		if item.CurrentStock < 0 {
			item.CurrentStock = 0
		}
	case models.ActivityAdjusted:
		item.CurrentStock = adj.Quantity
	}

	percent, status := Classify(item.CurrentStock, item.MinStock)
	item.PercentRemaining = percent
	item.Status = string(status)
	item.LastUpdated = now

	entry := models.ActivityLog{
		Type:     adj.Type,
		ItemID:   item.ID,
		ItemName: item.Name,
		OwnerID:  item.CreatedBy,
		Quantity: FormatQuantity(adj.Type, adj.Quantity, item.Unit),
		UserID:   actor.ID,
		UserName: actor.Name,
		Notes:    adj.Notes,
	}
	return item, entry
}

// FormatQuantity renders the log's quantity string: sign-prefixed for added
// and removed, bare for adjusted. E.g. "+5 units", "-15 kg", "3 l".
func FormatQuantity(adjType string, quantity float64, unit string) string {
	value := strconv.FormatFloat(quantity, 'f', -1, 64)
	switch adjType {
	case models.ActivityAdded:
		return fmt.Sprintf("+%s %s", value, unit)
	case models.ActivityRemoved:
		return fmt.Sprintf("-%s %s", value, unit)
	default:
		return fmt.Sprintf("%s %s", value, unit)
	}
}

var quantityPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?)`)

// ParseQuantity extracts the numeric magnitude from a formatted quantity
// string, tolerating an optional leading sign. Strings without a numeric
// prefix parse as zero.
func ParseQuantity(s string) float64 {
	m := quantityPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
