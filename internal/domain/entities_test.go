package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryTypeIDs(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, CategoryAll.TypeIDs())
	require.Equal(t, []int{1}, CategoryLeagues.TypeIDs())
	require.Equal(t, []int{2, 3, 4}, CategoryTeams.TypeIDs())

	// Callers may mutate the returned slice
	ids := CategoryTeams.TypeIDs()
	ids[0] = 99
	require.Equal(t, []int{2, 3, 4}, CategoryTeams.TypeIDs())
}

func TestCategoryCycle(t *testing.T) {
	require.Equal(t, CategoryLeagues, CategoryAll.Next())
	require.Equal(t, CategoryTeams, CategoryLeagues.Next())
	require.Equal(t, CategoryAll, CategoryTeams.Next())
	require.Equal(t, CategoryTeams, CategoryAll.Prev())
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"":        CategoryAll,
		"All":     CategoryAll,
		"leagues": CategoryLeagues,
		" TEAMS ": CategoryTeams,
		"team":    CategoryTeams,
		"League":  CategoryLeagues,
	} {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseCategory("players")
	require.Error(t, err)
}

func TestCategoryForTypeIDs(t *testing.T) {
	for _, c := range Categories() {
		got, ok := CategoryForTypeIDs(c.TypeIDs())
		require.True(t, ok)
		require.Equal(t, c, got)
	}

	got, ok := CategoryForTypeIDs([]int{4, 3, 2})
	require.True(t, ok)
	require.Equal(t, CategoryTeams, got)

	_, ok = CategoryForTypeIDs([]int{2})
	require.False(t, ok)
}

func TestQueryTypeIDsCSV(t *testing.T) {
	require.Equal(t, "2,3,4", Query{TypeIDs: []int{2, 3, 4}}.TypeIDsCSV())
	require.Equal(t, "", Query{}.TypeIDsCSV())
}

func TestPrimaryImagePath(t *testing.T) {
	path := "abc.png"

	_, ok := SearchResult{}.PrimaryImagePath()
	require.False(t, ok)

	_, ok = SearchResult{ImagePaths: []*string{nil, &path}}.PrimaryImagePath()
	require.False(t, ok)

	got, ok := SearchResult{ImagePaths: []*string{&path}}.PrimaryImagePath()
	require.True(t, ok)
	require.Equal(t, "abc.png", got)
}

func TestSearchResultDescription(t *testing.T) {
	require.Equal(t, "Football · Spain", SearchResult{SportName: "Football", CountryName: "Spain"}.GetDescription())
	require.Equal(t, "Tennis", SearchResult{SportName: "Tennis"}.GetDescription())
	require.Equal(t, "Serbia", SearchResult{CountryName: "Serbia"}.GetDescription())
}
