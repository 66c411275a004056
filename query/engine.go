package query

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/alwitt/qrbook/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultRecentLimit records shown by the recent view
const DefaultRecentLimit = 10

// Engine library query engine
type Engine interface {
	/*
		Apply compute the ordered view of a record collection. The input is not modified.

			@param records []models.QRRecord - snapshot of the collection
			@param mode ViewModeENUMType - library view
			@param state State - search, filter, and sort selection
			@returns the records to display, in display order
	*/
	Apply(records []models.QRRecord, mode ViewModeENUMType, state State) []models.QRRecord
}

// EngineParams query engine settings
type EngineParams struct {
	// RecentLimit records shown by the recent view
	RecentLimit int `validate:"gt=0"`
	// Collation language used to order titles
	Collation language.Tag `validate:"-"`
}

// engineImpl implements Engine
type engineImpl struct {
	recentLimit int
	collation   language.Tag
}

/*
NewEngine define a new query engine

	@param params EngineParams - engine settings
	@returns engine
*/
func NewEngine(params EngineParams) (Engine, error) {
	if err := validator.New().Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid query engine parameters [%w]", err)
	}
	return &engineImpl{recentLimit: params.RecentLimit, collation: params.Collation}, nil
}

// lastUsedOf last-used timestamp, with never-used records ordered earliest
func lastUsedOf(record models.QRRecord) time.Time {
	if record.LastUsedAt == nil {
		return time.Time{}
	}
	return *record.LastUsedAt
}

func byLastUsedDesc(a, b models.QRRecord) int {
	return lastUsedOf(b).Compare(lastUsedOf(a))
}

func matchesSearch(record models.QRRecord, needle string) bool {
	if strings.Contains(strings.ToLower(record.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Payload), needle) {
		return true
	}
	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func filter(records []models.QRRecord, keep func(models.QRRecord) bool) []models.QRRecord {
	result := []models.QRRecord{}
	for _, record := range records {
		if keep(record) {
			result = append(result, record)
		}
	}
	return result
}

func (e *engineImpl) Apply(
	records []models.QRRecord, mode ViewModeENUMType, state State,
) []models.QRRecord {
	result := slices.Clone(records)
	if result == nil {
		result = []models.QRRecord{}
	}

	switch mode {
	case ViewFavorites:
		result = filter(result, func(r models.QRRecord) bool { return r.IsFavorite })
	case ViewRecent:
		slices.SortStableFunc(result, byLastUsedDesc)
		if len(result) > e.recentLimit {
			result = result[:e.recentLimit]
		}
		return result
	}

	if state.SearchText != "" {
		needle := strings.ToLower(state.SearchText)
		result = filter(result, func(r models.QRRecord) bool { return matchesSearch(r, needle) })
	}

	if state.TypeFilter != nil {
		kind := *state.TypeFilter
		result = filter(result, func(r models.QRRecord) bool { return r.Kind == kind })
	}

	if state.FavoritesOnly {
		result = filter(result, func(r models.QRRecord) bool { return r.IsFavorite })
	}

	if len(state.TagFilter) > 0 {
		result = filter(result, func(r models.QRRecord) bool {
			for _, tag := range state.TagFilter {
				if !r.HasTag(tag) {
					return false
				}
			}
			return true
		})
	}

	if state.FolderFilter != nil {
		folder := *state.FolderFilter
		result = filter(result, func(r models.QRRecord) bool { return r.FolderName == folder })
	}

	switch state.Sort {
	case SortNewest:
		slices.SortStableFunc(result, func(a, b models.QRRecord) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortNameAZ:
		// Collators hold scratch buffers, so each call gets its own
		collator := collate.New(e.collation)
		slices.SortStableFunc(result, func(a, b models.QRRecord) int {
			return collator.CompareString(a.Title, b.Title)
		})
	case SortMostUsed:
		slices.SortStableFunc(result, func(a, b models.QRRecord) int {
			return b.ScanCount - a.ScanCount
		})
	default:
		slices.SortStableFunc(result, byLastUsedDesc)
	}

	return result
}

/*
AllTags the distinct tags used across a collection

	@param records []models.QRRecord - the collection
	@returns the tags in ascending order
*/
func AllTags(records []models.QRRecord) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, record := range records {
		for _, tag := range record.Tags {
			if !seen[tag] {
				seen[tag] = true
				result = append(result, tag)
			}
		}
	}
	sort.Strings(result)
	return result
}
