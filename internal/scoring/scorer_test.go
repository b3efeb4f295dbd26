package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FeedHarvester/internal/domain"
)

var testTaxonomy = domain.Taxonomy{
	{Name: "technology", Keywords: []string{"agritech", "énergie solaire", "e-commerce"}},
	{Name: "economy", Keywords: []string{"économie", "croissance économique", "commerce intracontinental"}},
	{Name: "politics", Keywords: []string{"diplomatie Sud-Sud"}},
}

func TestScoreEmptyText(t *testing.T) {
	t.Parallel()

	res := Score("", testTaxonomy)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Categories)
}

func TestScoreCaseInsensitive(t *testing.T) {
	t.Parallel()

	res := Score("L'ÉCONOMIE africaine", domain.Taxonomy{{Name: "eco", Keywords: []string{"économie"}}})
	assert.Equal(t, 1, res.Total)

	res = Score("Vers une DIPLOMATIE SUD-SUD renforcée", testTaxonomy)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, "politics", res.Categories[0].Category)
	assert.Equal(t, "diplomatie Sud-Sud", res.Categories[0].Keywords[0].Keyword)
}

func TestScoreRejectsWordInterior(t *testing.T) {
	t.Parallel()

	tax := domain.Taxonomy{{Name: "eco", Keywords: []string{"économie"}}}
	assert.Equal(t, 0, Score("macroéconomie", tax).Total)
	assert.Equal(t, 0, Score("économies", tax).Total)
	assert.Equal(t, 1, Score("(économie)", tax).Total)
}

func TestScoreMatchesAcrossUnicodeForms(t *testing.T) {
	t.Parallel()

	precomposed := domain.Taxonomy{{Name: "eco", Keywords: []string{"\u00e9conomie"}}}
	assert.Equal(t, 1, Score("l'e\u0301conomie", precomposed).Total)
	assert.Equal(t, 0, Score("macroe\u0301conomie", precomposed).Total)

	combining := domain.Taxonomy{{Name: "eco", Keywords: []string{"e\u0301conomie"}}}
	res := Score("L'\u00c9CONOMIE", combining)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "e\u0301conomie", res.Categories[0].Keywords[0].Keyword)
}

func TestScorePhraseMustBeContiguous(t *testing.T) {
	t.Parallel()

	tax := domain.Taxonomy{{Name: "eco", Keywords: []string{"commerce intracontinental"}}}
	assert.Equal(t, 0, Score("commerce et intracontinental", tax).Total)
	assert.Equal(t, 1, Score("le commerce intracontinental progresse", tax).Total)
}

func TestScoreOmitsZeroCategories(t *testing.T) {
	t.Parallel()

	res := Score("L'agritech et l'énergie solaire. Encore de l'énergie solaire.", testTaxonomy)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Categories, 1)

	tech, ok := res.Categories.Get("technology")
	require.True(t, ok)
	assert.Equal(t, 3, tech.Score)
	assert.Equal(t, []domain.KeywordCount{
		{Keyword: "agritech", Count: 1},
		{Keyword: "énergie solaire", Count: 2},
	}, tech.Keywords)

	_, ok = res.Categories.Get("economy")
	assert.False(t, ok)
}

// Known characteristic: a keyword nested in a longer keyword is counted for
// both phrases.
func TestScoreOverlappingPhrasesDoubleCount(t *testing.T) {
	t.Parallel()

	tax := domain.Taxonomy{{Name: "eco", Keywords: []string{"économie", "économie africaine"}}}
	res := Score("l'économie africaine", tax)
	assert.Equal(t, 2, res.Total)
}

func TestScoreTotalIsSumOfCategories(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"agritech agritech e-commerce",
		"croissance économique et économie, diplomatie sud-sud",
		"rien à signaler",
	}
	for _, text := range texts {
		res := Score(text, testTaxonomy)
		sum := 0
		for _, c := range res.Categories {
			assert.Positive(t, c.Score)
			sum += c.Score
		}
		assert.Equal(t, sum, res.Total, text)
	}
}

func TestCountPhrase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text, phrase string
		want         int
	}{
		{"e-commerce, e-commerce", "e-commerce", 2},
		{"ae-commerce", "e-commerce", 0},
		{"aaa", "aa", 0},
		{"aa aa", "aa", 2},
		{"startup_x", "startup", 0},
		{"", "x", 0},
		{"x", "", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CountPhrase(tc.text, tc.phrase), "%q in %q", tc.phrase, tc.text)
	}
}
