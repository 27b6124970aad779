package services

import (
	"fmt"
	"math/rand/v2"

	"orderalone/models"
)

// RandomSource draws integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is safe for concurrent use.
var DefaultSource RandomSource = defaultSource{}

// GenerateSelection draws one order from the catalog: a uniform category, a
// uniform item from it, and for every topping group an independent coin flip
// that, on heads, adds one uniform item from that group.
func GenerateSelection(src RandomSource, categories []models.Category) (models.Selection, error) {
	if len(categories) == 0 {
		return models.Selection{}, fmt.Errorf("%w: menu has no categories", ErrInvalidMenu)
	}
	category := categories[src.IntN(len(categories))]

	if len(category.Menus) == 0 {
		return models.Selection{}, fmt.Errorf("%w: category %q has no items", ErrInvalidMenu, category.Kategorie)
	}
	item := category.Menus[src.IntN(len(category.Menus))]

	var toppings []models.ToppingChoice
	for _, group := range category.Toping {
		if src.IntN(2) == 0 {
			continue
		}
		if len(group.Items) == 0 {
			continue
		}
		toppings = append(toppings, models.ToppingChoice{
			Group: group.Name,
			Item:  group.Items[src.IntN(len(group.Items))],
		})
	}

	return models.Selection{
		Category: category.Kategorie,
		Item:     item,
		Topping:  toppings,
	}, nil
}
