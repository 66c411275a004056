package query_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/query"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

var referenceTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func at(offset time.Duration) *time.Time {
	ts := referenceTime.Add(offset)
	return &ts
}

func sampleRecords() []models.QRRecord {
	return []models.QRRecord{
		{
			ID: uuid.NewString(), Title: "Alpha", Payload: "https://alpha.com", Kind: models.KindURL,
			Tags: []string{"work"}, IsFavorite: true, ScanCount: 5,
			CreatedAt: *at(-300 * time.Second), LastUsedAt: at(-60 * time.Second),
		},
		{
			ID: uuid.NewString(), Title: "Beta", Payload: "https://beta.com", Kind: models.KindText,
			Tags: []string{"personal"}, ScanCount: 10,
			CreatedAt: *at(-200 * time.Second), LastUsedAt: at(-120 * time.Second),
		},
		{
			ID: uuid.NewString(), Title: "Gamma", Payload: "https://gamma.com", Kind: models.KindWiFi,
			Tags: []string{"work", "personal"}, IsFavorite: true, ScanCount: 1,
			CreatedAt: *at(-100 * time.Second), LastUsedAt: at(-180 * time.Second),
			FolderName: "Network",
		},
	}
}

func titles(records []models.QRRecord) []string {
	result := []string{}
	for _, record := range records {
		result = append(result, record.Title)
	}
	return result
}

func defineEngine(t *testing.T) query.Engine {
	uut, err := query.NewEngine(
		query.EngineParams{RecentLimit: query.DefaultRecentLimit, Collation: language.English},
	)
	assert.Nil(t, err)
	return uut
}

func TestEngineParams(t *testing.T) {
	assert := assert.New(t)

	_, err := query.NewEngine(query.EngineParams{RecentLimit: 0})
	assert.Error(err)
}

func TestEngineViewModes(t *testing.T) {
	assert := assert.New(t)

	uut := defineEngine(t)
	records := sampleRecords()

	// Case 0: all
	assert.Len(uut.Apply(records, query.ViewAll, query.NewState()), 3)

	// Case 1: favorites
	{
		result := uut.Apply(records, query.ViewFavorites, query.NewState())
		assert.Len(result, 2)
		for _, record := range result {
			assert.True(record.IsFavorite)
		}
	}

	// Case 2: recent ignores every other filter
	{
		state := query.NewState()
		state.SearchText = "nothing matches this"
		result := uut.Apply(records, query.ViewRecent, state)
		assert.Equal([]string{"Alpha", "Beta", "Gamma"}, titles(result))
	}

	// Case 3: recent is capped
	{
		many := []models.QRRecord{}
		for idx := 0; idx < 15; idx++ {
			many = append(many, models.QRRecord{
				ID: uuid.NewString(), Title: fmt.Sprintf("QR %d", idx),
				LastUsedAt: at(time.Duration(-idx) * time.Minute),
			})
		}
		many = append(many, models.QRRecord{ID: uuid.NewString(), Title: "Never used"})

		result := uut.Apply(many, query.ViewRecent, query.NewState())
		assert.Len(result, 10)
		assert.Equal("QR 0", result[0].Title)
		assert.Equal("QR 9", result[9].Title)
	}

	// Case 4: the input is not reordered
	{
		state := query.NewState()
		state.Sort = query.SortNameAZ
		reversed := []models.QRRecord{records[2], records[1], records[0]}
		_ = uut.Apply(reversed, query.ViewAll, state)
		assert.Equal([]string{"Gamma", "Beta", "Alpha"}, titles(reversed))
	}

	// Case 5: empty collection
	assert.Empty(uut.Apply(nil, query.ViewAll, query.NewState()))
}

func TestEngineSearch(t *testing.T) {
	assert := assert.New(t)

	uut := defineEngine(t)
	records := sampleRecords()

	for _, tc := range []struct {
		search   string
		expected []string
	}{
		{search: "Alpha", expected: []string{"Alpha"}},
		{search: "ALPHA", expected: []string{"Alpha"}},
		{search: "beta.com", expected: []string{"Beta"}},
		{search: "personal", expected: []string{"Beta", "Gamma"}},
		{search: "zzz", expected: []string{}},
	} {
		state := query.NewState()
		state.SearchText = tc.search
		assert.Equal(tc.expected, titles(uut.Apply(records, query.ViewAll, state)), tc.search)
	}
}

func TestEngineFilters(t *testing.T) {
	assert := assert.New(t)

	uut := defineEngine(t)
	records := sampleRecords()

	// Case 0: type
	{
		state := query.NewState()
		kind := models.KindURL
		state.TypeFilter = &kind
		assert.Equal([]string{"Alpha"}, titles(uut.Apply(records, query.ViewAll, state)))
		assert.Equal(1, state.ActiveFilterCount())
	}

	// Case 1: favorites only
	{
		state := query.NewState()
		state.FavoritesOnly = true
		assert.Equal([]string{"Alpha", "Gamma"}, titles(uut.Apply(records, query.ViewAll, state)))
	}

	// Case 2: tags must all be present
	{
		state := query.NewState()
		state.TagFilter = []string{"work", "personal"}
		assert.Equal([]string{"Gamma"}, titles(uut.Apply(records, query.ViewAll, state)))
	}

	// Case 3: folder
	{
		state := query.NewState()
		folder := "Network"
		state.FolderFilter = &folder
		assert.Equal([]string{"Gamma"}, titles(uut.Apply(records, query.ViewAll, state)))
	}

	// Case 4: combined
	{
		state := query.NewState()
		kind := models.KindWiFi
		state.TypeFilter = &kind
		state.FavoritesOnly = true
		assert.Equal([]string{"Gamma"}, titles(uut.Apply(records, query.ViewAll, state)))
		assert.Equal(2, state.ActiveFilterCount())
	}
}

func TestEngineSort(t *testing.T) {
	assert := assert.New(t)

	uut := defineEngine(t)
	records := sampleRecords()

	for _, tc := range []struct {
		sort     query.SortOptionENUMType
		expected []string
	}{
		{sort: query.SortLastUsed, expected: []string{"Alpha", "Beta", "Gamma"}},
		{sort: query.SortNewest, expected: []string{"Gamma", "Beta", "Alpha"}},
		{sort: query.SortNameAZ, expected: []string{"Alpha", "Beta", "Gamma"}},
		{sort: query.SortMostUsed, expected: []string{"Beta", "Alpha", "Gamma"}},
	} {
		state := query.NewState()
		state.Sort = tc.sort
		assert.Equal(tc.expected, titles(uut.Apply(records, query.ViewAll, state)), string(tc.sort))
	}

	// Locale aware name ordering
	{
		state := query.NewState()
		state.Sort = query.SortNameAZ
		mixed := []models.QRRecord{{Title: "beta"}, {Title: "Éclair"}, {Title: "alpha"}, {Title: "Zulu"}}
		assert.Equal(
			[]string{"alpha", "beta", "Éclair", "Zulu"}, titles(uut.Apply(mixed, query.ViewAll, state)),
		)
	}

	// Ties keep their input order
	{
		state := query.NewState()
		state.Sort = query.SortMostUsed
		tied := []models.QRRecord{{Title: "one"}, {Title: "two"}, {Title: "three"}}
		assert.Equal(
			[]string{"one", "two", "three"}, titles(uut.Apply(tied, query.ViewAll, state)),
		)
	}
}

func TestStateHelpers(t *testing.T) {
	assert := assert.New(t)

	uut := query.NewState()
	assert.Equal(0, uut.ActiveFilterCount())

	kind := models.KindText
	folder := "Work"
	uut.Sort = query.SortMostUsed
	uut.SearchText = "abc"
	uut.TypeFilter = &kind
	uut.FavoritesOnly = true
	uut.FolderFilter = &folder
	uut.ToggleTag("a")
	uut.ToggleTag("b")
	assert.Equal([]string{"a", "b"}, uut.TagFilter)
	uut.ToggleTag("a")
	assert.Equal([]string{"b"}, uut.TagFilter)
	assert.Equal(4, uut.ActiveFilterCount())

	uut.ClearFilters()
	assert.Equal(0, uut.ActiveFilterCount())
	assert.Empty(uut.SearchText)
	assert.Equal(query.SortMostUsed, uut.Sort)

	assert.Equal("Recent", query.SortLastUsed.Label())
	assert.Equal("Name A-Z", query.SortNameAZ.Label())
	assert.Equal(query.SortLastUsed, query.ParseSortOption("bogus"))
	assert.Equal(query.SortNewest, query.ParseSortOption("newest"))
	assert.Equal(query.ViewAll, query.ParseViewMode("bogus"))
	assert.Equal(query.ViewRecent, query.ParseViewMode("recent"))
}

func TestAllTags(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"personal", "work"}, query.AllTags(sampleRecords()))
	assert.Equal([]string{}, query.AllTags(nil))
}
