package domain

// FilterState is the visitor's current catalog search text and category
// selection. It only ever describes a projection of the registry.
type FilterState struct {
	SearchQuery      string `json:"searchQuery" form:"q"`
	SelectedCategory string `json:"selectedCategory" form:"category"`
}

// NewFilterState returns the initial state: empty query, all categories.
func NewFilterState() FilterState {
	return FilterState{SelectedCategory: AllCategories}
}

// SetQuery replaces the search text verbatim. Whitespace is significant.
func (s *FilterState) SetQuery(q string) {
	s.SearchQuery = q
}

// SetCategory selects a category. An empty value resets the selection to "All".
func (s *FilterState) SetCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	s.SelectedCategory = category
}

// MenuState tracks whether the mobile navigation panel is open.
type MenuState struct {
	Open bool
}

// Toggle flips the panel open or closed.
func (m *MenuState) Toggle() {
	m.Open = !m.Open
}

// Close shuts the panel. Following any navigation link closes it.
func (m *MenuState) Close() {
	m.Open = false
}
