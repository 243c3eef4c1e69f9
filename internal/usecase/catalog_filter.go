package usecase

import (
	"strings"

	"github.com/tebramedicals/medtech-site/internal/domain"
)

// FilterProducts returns the products matching both the category selector and
// the search text, in their original order.
//
// A product matches the category when selectedCategory is "All" or equals its
// category exactly. It matches the text when searchQuery is a case-insensitive
// substring of its name or description; an empty query matches everything.
// The query is used verbatim, whitespace included. An unknown category yields
// an empty result. The result is never nil and never aliases the input.
func FilterProducts(products []domain.ProductRecord, searchQuery, selectedCategory string) []domain.ProductRecord {
	query := strings.ToLower(searchQuery)
	out := make([]domain.ProductRecord, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, selectedCategory) && matchesText(p, query) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func matchesCategory(p domain.ProductRecord, selected string) bool {
	return selected == domain.AllCategories || p.Category == selected
}

// matchesText expects an already lower-cased query.
func matchesText(p domain.ProductRecord, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}
