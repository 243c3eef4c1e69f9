package domain

import "slices"

// AllCategories is the selector value that disables category filtering.
const AllCategories = "All"

// ProductRecord is a single catalog entry. Records are defined once at startup
// and never mutated; use Clone before handing one out.
type ProductRecord struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

// Clone returns a deep copy of the record.
func (p ProductRecord) Clone() ProductRecord {
	p.Features = slices.Clone(p.Features)
	return p
}

// CloneProducts deep-copies a record sequence, preserving order.
// The result is never nil.
func CloneProducts(products []ProductRecord) []ProductRecord {
	out := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	return out
}

// CategoryReport describes how the category selector shown to visitors lines
// up with the categories actually present in the registry.
type CategoryReport struct {
	// Labels is the selector list, "All" first.
	Labels []string `json:"labels"`
	// DataCategories lists categories present in the registry in first-seen order.
	DataCategories []string `json:"dataCategories"`
	// UnmatchedLabels are selector labels (other than "All") that match no product.
	UnmatchedLabels []string `json:"unmatchedLabels"`
	// UnreachableCategories are data categories with no selector label.
	UnreachableCategories []string `json:"unreachableCategories"`
}

// Consistent reports whether every label matches data and every category is selectable.
func (r CategoryReport) Consistent() bool {
	return len(r.UnmatchedLabels) == 0 && len(r.UnreachableCategories) == 0
}
