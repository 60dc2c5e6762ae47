package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

func ids(result domain.SearchResult) []string {
	out := make([]string, 0, len(result.Properties))
	for _, p := range result.Properties {
		out = append(out, p.ID)
	}
	return out
}

func TestSearchNoCriteria(t *testing.T) {
	cat := New()

	result := cat.Search(domain.SearchCriteria{})

	assert.Len(t, result.Properties, 5)
	assert.Equal(t, len(result.Properties), result.TotalFound)
}

func TestSearchByPropertyType(t *testing.T) {
	cat := New()

	result := cat.Search(domain.SearchCriteria{
		PropertyType: domain.StringPtr("apartment"),
	})

	assert.ElementsMatch(t, []string{"prop_001", "prop_003", "prop_004"}, ids(result))
}

func TestSearchByLocationMatchesCityAndArea(t *testing.T) {
	cat := New()

	byCity := cat.Search(domain.SearchCriteria{Locations: []string{"karachi"}})
	assert.ElementsMatch(t, []string{"prop_002", "prop_004"}, ids(byCity))

	byArea := cat.Search(domain.SearchCriteria{Locations: []string{"DHA"}})
	assert.ElementsMatch(t, []string{"prop_001", "prop_005"}, ids(byArea))
}

func TestSearchByPriceRange(t *testing.T) {
	cat := New()

	result := cat.Search(domain.SearchCriteria{
		MinPrice: domain.Float64Ptr(1.5),
		MaxPrice: domain.Float64Ptr(3.0),
	})

	assert.ElementsMatch(t, []string{"prop_001", "prop_002"}, ids(result))
}

func TestSearchBedroomsAndFeatures(t *testing.T) {
	cat := New()

	result := cat.Search(domain.SearchCriteria{
		MinBedrooms:      domain.IntPtr(3),
		MustHaveFeatures: []string{"parking", "garden"},
	})

	assert.ElementsMatch(t, []string{"prop_002", "prop_005"}, ids(result))
}

func TestSearchUnknownFeatureIgnored(t *testing.T) {
	cat := New()

	result := cat.Search(domain.SearchCriteria{
		MustHaveFeatures: []string{"helipad"},
	})

	// Unrecognized feature names never filter anything out.
	assert.Len(t, result.Properties, 5)
}

func TestSearchExcludesUnavailable(t *testing.T) {
	props := SampleProperties()
	props[0].Available = false
	cat := New(props...)

	result := cat.Search(domain.SearchCriteria{})

	assert.NotContains(t, ids(result), "prop_001")
	assert.Len(t, result.Properties, 4)
}

func TestSearchMaxResultsTruncates(t *testing.T) {
	cat := New()

	result := cat.Search(domain.SearchCriteria{MaxResults: 2})

	assert.Len(t, result.Properties, 2)
	assert.Equal(t, 2, result.TotalFound)
}

func TestSearchCriteriaSnapshotReturned(t *testing.T) {
	cat := New()
	criteria := domain.SearchCriteria{
		PropertyType: domain.StringPtr("house"),
		MaxPrice:     domain.Float64Ptr(2.0),
	}

	result := cat.Search(criteria)

	require.NotNil(t, result.SearchCriteria.PropertyType)
	assert.Equal(t, "house", *result.SearchCriteria.PropertyType)
	require.NotNil(t, result.SearchCriteria.MaxPrice)
	assert.Equal(t, 2.0, *result.SearchCriteria.MaxPrice)
}

func TestSearchNarrowingNeverGrows(t *testing.T) {
	cat := New()

	steps := []domain.SearchCriteria{
		{},
		{PropertyType: domain.StringPtr("apartment")},
		{PropertyType: domain.StringPtr("apartment"), Locations: []string{"Karachi"}},
		{PropertyType: domain.StringPtr("apartment"), Locations: []string{"Karachi"}, MaxPrice: domain.Float64Ptr(1.5)},
		{PropertyType: domain.StringPtr("apartment"), Locations: []string{"Karachi"}, MaxPrice: domain.Float64Ptr(1.5), MinBedrooms: domain.IntPtr(2)},
	}

	prev := len(cat.All()) + 1
	for _, criteria := range steps {
		result := cat.Search(criteria)
		assert.LessOrEqual(t, result.TotalFound, prev, "criteria %+v", criteria)
		prev = result.TotalFound
	}
}
