package services

import (
	"sort"

	"orderalone/models"
)

type Guess struct {
	Category     string
	MenuName     string
	ToppingNames []string
}

type ExpectedAnswer struct {
	Category     string   `json:"category"`
	MenuName     string   `json:"menu_name"`
	ToppingNames []string `json:"topping_names"`
}

// nameSet collapses duplicates and drops empty names.
func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func toppingNames(selection models.Selection) []string {
	names := make([]string, 0, len(selection.Topping))
	for _, t := range selection.Topping {
		names = append(names, t.Item.Name)
	}
	return names
}

// Expected returns the answer a guess is compared against. Topping names are
// sorted and never nil.
func Expected(selection models.Selection) ExpectedAnswer {
	set := nameSet(toppingNames(selection))
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return ExpectedAnswer{
		Category:     selection.Category,
		MenuName:     selection.Item.Name,
		ToppingNames: names,
	}
}

// CheckAnswer is an exact, case-sensitive match on category and item name and
// a set comparison on topping names.
func CheckAnswer(selection models.Selection, guess Guess) bool {
	if guess.Category != selection.Category || guess.MenuName != selection.Item.Name {
		return false
	}

	expected := nameSet(toppingNames(selection))
	provided := nameSet(guess.ToppingNames)
	if len(expected) != len(provided) {
		return false
	}
	for name := range provided {
		if _, ok := expected[name]; !ok {
			return false
		}
	}
	return true
}

// ScoreDelta is the order's snapshotted level on a correct answer. Scores only
// grow, so a negative level counts as zero.
func ScoreDelta(order *models.Order, correct bool) int {
	if !correct {
		return 0
	}
	return max(order.LevelValue(), 0)
}
