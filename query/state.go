// Package query - library search, filter, and sort engine
package query

import "github.com/alwitt/qrbook/models"

// SortOptionENUMType library sort order ENUM value type
type SortOptionENUMType string

const (
	// SortLastUsed most recently used first
	SortLastUsed SortOptionENUMType = "lastUsed"
	// SortNewest most recently created first
	SortNewest SortOptionENUMType = "newest"
	// SortNameAZ title ascending in the collation language
	SortNameAZ SortOptionENUMType = "nameAZ"
	// SortMostUsed highest scan count first
	SortMostUsed SortOptionENUMType = "mostUsed"
)

// AllSortOptions every sort option, in display order
var AllSortOptions = []SortOptionENUMType{SortLastUsed, SortNewest, SortNameAZ, SortMostUsed}

// Label human readable name of the sort option
func (s SortOptionENUMType) Label() string {
	switch s {
	case SortLastUsed:
		return "Recent"
	case SortNewest:
		return "Newest"
	case SortNameAZ:
		return "Name A-Z"
	case SortMostUsed:
		return "Most Used"
	}
	return string(s)
}

// ParseSortOption parse a sort option, falling back to SortLastUsed
func ParseSortOption(raw string) SortOptionENUMType {
	for _, option := range AllSortOptions {
		if string(option) == raw {
			return option
		}
	}
	return SortLastUsed
}

// ViewModeENUMType library view ENUM value type
type ViewModeENUMType string

const (
	// ViewAll every record
	ViewAll ViewModeENUMType = "all"
	// ViewFavorites favorited records only
	ViewFavorites ViewModeENUMType = "favorites"
	// ViewRecent the most recently used records
	ViewRecent ViewModeENUMType = "recent"
)

// ParseViewMode parse a view mode, falling back to ViewAll
func ParseViewMode(raw string) ViewModeENUMType {
	switch ViewModeENUMType(raw) {
	case ViewFavorites:
		return ViewFavorites
	case ViewRecent:
		return ViewRecent
	}
	return ViewAll
}

// State the user's current search, filter, and sort selection
type State struct {
	// SearchText case-insensitive substring matched against title, payload, and tags
	SearchText string
	// Sort result order
	Sort SortOptionENUMType
	// TypeFilter keep only records of this kind
	TypeFilter *models.KindENUMType
	// FavoritesOnly keep only favorited records
	FavoritesOnly bool
	// TagFilter keep only records carrying every one of these tags
	TagFilter []string
	// FolderFilter keep only records in this folder
	FolderFilter *string
}

// NewState the initial state
func NewState() State {
	return State{Sort: SortLastUsed}
}

// ActiveFilterCount the number of active filters. Search text and sort are not filters.
func (s State) ActiveFilterCount() int {
	count := 0
	if s.TypeFilter != nil {
		count++
	}
	if s.FavoritesOnly {
		count++
	}
	if len(s.TagFilter) > 0 {
		count++
	}
	if s.FolderFilter != nil {
		count++
	}
	return count
}

// ClearFilters reset everything except the sort option
func (s *State) ClearFilters() {
	s.SearchText = ""
	s.TypeFilter = nil
	s.FavoritesOnly = false
	s.TagFilter = nil
	s.FolderFilter = nil
}

// HasTag whether the tag is part of the tag filter
func (s State) HasTag(tag string) bool {
	for _, t := range s.TagFilter {
		if t == tag {
			return true
		}
	}
	return false
}

// ToggleTag add the tag to the tag filter, or remove it if already present
func (s *State) ToggleTag(tag string) {
	if !s.HasTag(tag) {
		s.TagFilter = append(s.TagFilter, tag)
		return
	}
	kept := []string{}
	for _, t := range s.TagFilter {
		if t != tag {
			kept = append(kept, t)
		}
	}
	s.TagFilter = kept
}
