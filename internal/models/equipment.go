package models

import (
	"sort"
	"strings"
)

// Conditions lists the accepted equipment condition values, in the
// order the forms present them.
var Conditions = []string{"new", "good", "fair", "poor"}

type Equipment struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	ConditionStatus   string `json:"condition_status"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

// DisplayCategory returns the category with an empty value shown as
// "Uncategorized".
func (e Equipment) DisplayCategory() string {
	if e.Category == "" {
		return "Uncategorized"
	}
	return e.Category
}

func (e Equipment) InStock() bool { return e.AvailableQuantity > 0 }

// FilterEquipment applies the two local filters of the equipment view:
// a case-insensitive substring match across name, category and
// condition, AND a category-equality filter where "all" (or empty)
// matches everything. Purely local, recomputed from the last-fetched
// list.
func FilterEquipment(items []Equipment, query, category string) []Equipment {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Equipment, 0, len(items))
	for _, it := range items {
		if q != "" {
			hay := strings.ToLower(it.Name + " " + it.Category + " " + it.ConditionStatus)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if category != "" && category != "all" && it.DisplayCategory() != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Categories returns the distinct display categories of items, sorted,
// for the filter dropdown.
func Categories(items []Equipment) []string {
	set := map[string]struct{}{}
	for _, it := range items {
		set[it.DisplayCategory()] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
