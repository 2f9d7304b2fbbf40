package services

import (
	"github.com/yeremiapane/bakery-order-app/models"
)

// DeliveryFee is the flat surcharge in pesos added when the order is for
// delivery.
const DeliveryFee = 100

// QuoteLine is the subtotal of one item row, 1-based for display.
type QuoteLine struct {
	Item     int `json:"item"`
	Subtotal int `json:"subtotal"`
}

// ComputeTotal prices the current form state. It is a pure function: the form
// calls it after every edit, so unresolved or empty option ids contribute
// zero instead of failing.
func ComputeTotal(items []models.ItemSelection, deliveryOption string) int {
	total := 0
	for _, item := range items {
		total += itemSubtotal(item)
	}
	if deliveryOption == models.DeliveryOptionDelivery {
		total += DeliveryFee
	}
	return total
}

// QuoteBreakdown returns per-item subtotals plus the grand total, for the
// running-total view.
func QuoteBreakdown(items []models.ItemSelection, deliveryOption string) ([]QuoteLine, int) {
	lines := make([]QuoteLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, QuoteLine{Item: i + 1, Subtotal: itemSubtotal(item)})
	}
	return lines, ComputeTotal(items, deliveryOption)
}

func itemSubtotal(item models.ItemSelection) int {
	sum := 0
	selections := map[string]string{
		models.CategorySize:    item.SizeID,
		models.CategoryShape:   item.ShapeID,
		models.CategoryFlavor:  item.FlavorID,
		models.CategoryFilling: item.FillingID,
		models.CategoryDesign:  item.DesignID,
	}
	for category, id := range selections {
		if id == "" {
			continue
		}
		if opt := models.FindOption(category, id); opt != nil {
			sum += opt.PriceDelta
		}
	}
	return sum
}
