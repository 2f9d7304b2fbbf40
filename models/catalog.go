package models

// CatalogOption is one selectable cake option with its price delta in pesos.
type CatalogOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceDelta int    `json:"price_delta"`
}

// Option categories. Every ItemSelection references one option per category.
const (
	CategorySize    = "size"
	CategoryShape   = "shape"
	CategoryFlavor  = "flavor"
	CategoryFilling = "filling"
	CategoryDesign  = "design"
)

// Sentinels in the descriptive taxonomy that switch the item description to
// the customer's free-text entry.
const (
	ProductTypeOther    = "Other"
	ProductSubTypeOther = "Others"
)

// Static option tables, loaded once and never mutated.
var catalogTables = map[string][]CatalogOption{
	CategorySize: {
		{ID: "bento-4", Name: "Bento Cake (4\")", PriceDelta: 350},
		{ID: "round-6", Name: "6\" Round", PriceDelta: 750},
		{ID: "round-8", Name: "8\" Round", PriceDelta: 1100},
		{ID: "round-9", Name: "9\" Round", PriceDelta: 1350},
		{ID: "round-10", Name: "10\" Round", PriceDelta: 1600},
		{ID: "two-tier", Name: "2 Tier (6\"x9\")", PriceDelta: 2800},
		{ID: "three-tier", Name: "3 Tier (6\"x9\"x12\")", PriceDelta: 4500},
	},
	CategoryShape: {
		{ID: "round", Name: "Round", PriceDelta: 0},
		{ID: "square", Name: "Square", PriceDelta: 100},
		{ID: "rectangle", Name: "Rectangular", PriceDelta: 150},
		{ID: "heart", Name: "Heart", PriceDelta: 200},
	},
	CategoryFlavor: {
		{ID: "chocolate", Name: "Chocolate Moist", PriceDelta: 0},
		{ID: "vanilla", Name: "Vanilla Chiffon", PriceDelta: 0},
		{ID: "ube", Name: "Ube", PriceDelta: 150},
		{ID: "red-velvet", Name: "Red Velvet", PriceDelta: 200},
		{ID: "mocha", Name: "Mocha", PriceDelta: 100},
	},
	CategoryFilling: {
		{ID: "none", Name: "No Filling", PriceDelta: 0},
		{ID: "choco-ganache", Name: "Chocolate Ganache", PriceDelta: 120},
		{ID: "strawberry", Name: "Strawberry Jam", PriceDelta: 100},
		{ID: "caramel", Name: "Salted Caramel", PriceDelta: 120},
		{ID: "cream-cheese", Name: "Cream Cheese", PriceDelta: 150},
	},
	CategoryDesign: {
		{ID: "simple", Name: "Simple Icing", PriceDelta: 0},
		{ID: "floral", Name: "Floral", PriceDelta: 250},
		{ID: "drip", Name: "Chocolate Drip", PriceDelta: 200},
		{ID: "character", Name: "Character / Themed", PriceDelta: 400},
		{ID: "custom", Name: "Custom (see reference photo)", PriceDelta: 500},
	},
}

// ProductTypes and ProductSubTypes are the descriptive taxonomy shown on the
// form; they drive the per-slot description in the persisted record.
var ProductTypes = []string{
	"1 Tier", "2 Tier", "3 Tier", "4 Tier",
	"Square or Rectangular", "Cupcakes & Pastries", ProductTypeOther,
}

var ProductSubTypes = map[string][]string{
	"1 Tier": {
		"Bento Cake (4\")",
		"6\" Round (4\" Thickness)", "8\" Round (4\" Thickness)",
		"9\" Round (4\" Thickness)", "10\" Round (4\" Thickness)",
		"6\" Round (5\" Thickness)", "8\" Round (5\" Thickness)",
		"9\" Round (5\" Thickness)", "10\" Round (5\" Thickness)",
		"6\" Round (6\" Thickness)", "8\" Round (6\" Thickness)",
		ProductSubTypeOther,
	},
	"2 Tier": {"6\"x9\"", "7\"x10\"", "8\"x10\""},
	"3 Tier": {"5\"x8\"x12\"", "6\"x9\"x12\"", "7\"x10\"x14\""},
	"Square or Rectangular": {
		"8x12 Rectangular Cake", "10x14 Rectangular Cake", "12x16 Rectangular Cake",
		"8x8 Square Cake", "9x9 Square Cake", "10x10 Square Cake",
	},
	"Cupcakes & Pastries": {
		"Chocolate Cupcakes", "Vanilla Cupcakes", "Cakepops",
		"Brownies", "Custom Sugar Cookies", "Crinkles", "Macaroons",
	},
}

// ListOptions returns the options of a category in display order. The result
// is a copy, so callers cannot mutate the tables.
func ListOptions(category string) []CatalogOption {
	opts, ok := catalogTables[category]
	if !ok {
		return nil
	}
	out := make([]CatalogOption, len(opts))
	copy(out, opts)
	return out
}

// FindOption looks an option up by id within a category, nil when absent.
func FindOption(category, id string) *CatalogOption {
	for _, opt := range catalogTables[category] {
		if opt.ID == id {
			found := opt
			return &found
		}
	}
	return nil
}
