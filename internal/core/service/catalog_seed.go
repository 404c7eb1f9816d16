package service

import (
	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/domain"
)

// defaultCatalog returns the catalog seeded into an empty store. Downstream
// clients rely on a non-empty default, so the contents are fixed.
func defaultCatalog() domain.Catalog {
	seed := map[string]struct {
		price int64
		unit  string
	}{
		"apple":       {100, "kg"},
		"banana":      {50, "dozen"},
		"milk":        {120, "litre"},
		"bread":       {80, "loaf"},
		"egg":         {15, "piece"},
		"orange":      {60, "kg"},
		"mango":       {150, "kg"},
		"potato":      {30, "kg"},
		"tomato":      {40, "kg"},
		"onion":       {25, "kg"},
		"carrot":      {50, "kg"},
		"cucumber":    {20, "kg"},
		"spinach":     {30, "kg"},
		"cauliflower": {40, "piece"},
		"broccoli":    {60, "kg"},
		"juice":       {150, "litre"},
		"biscuits":    {80, "packet"},
		"chips":       {50, "packet"},
		"soap":        {60, "piece"},
		"shampoo":     {200, "bottle"},
		"detergent":   {120, "kg"},
		"toothpaste":  {90, "tube"},
		"oil":         {200, "litre"},
		"salt":        {20, "kg"},
		"sugar":       {60, "kg"},
		"tea":         {200, "packet"},
		"coffee":      {300, "packet"},
		"butter":      {250, "pack"},
		"cheese":      {400, "kg"},
		"yogurt":      {100, "litre"},
		"chicken":     {300, "kg"},
		"fish":        {500, "kg"},
		"rice":        {80, "kg"},
		"wheat":       {45, "kg"},
		"pasta":       {100, "packet"},
		"noodles":     {70, "packet"},
		"jam":         {150, "jar"},
		"honey":       {300, "jar"},
		"cereal":      {200, "box"},
		"chocolate":   {100, "bar"},
	}

	catalog := make(domain.Catalog, len(seed))
	for name, p := range seed {
		catalog[name] = domain.Product{Price: decimal.NewFromInt(p.price), Unit: p.unit}
	}
	return catalog
}
