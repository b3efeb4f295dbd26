package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"FeedHarvester/internal/domain"
)

// Scorer counts taxonomy keyword occurrences in article text.
type Scorer struct {
	categories []category
}

type category struct {
	name     string
	keywords []keyword
}

type keyword struct {
	phrase string
	lower  string
}

// NewScorer binds a taxonomy; keywords are normalized and lower-cased once here.
func NewScorer(taxonomy domain.Taxonomy) *Scorer {
	cats := make([]category, 0, len(taxonomy))
	for _, cat := range taxonomy {
		kws := make([]keyword, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			kws = append(kws, keyword{phrase: kw, lower: fold(kw)})
		}
		cats = append(cats, category{name: cat.Name, keywords: kws})
	}
	return &Scorer{categories: cats}
}

// Score returns the additive keyword score of text. Categories with no
// matches are left out. Overlapping phrases are counted independently.
func (s *Scorer) Score(text string) domain.ScoreResult {
	if text == "" {
		return domain.ScoreResult{}
	}

	lower := fold(text)
	var result domain.ScoreResult

	for _, cat := range s.categories {
		match := domain.KeywordMatch{Category: cat.name}
		for _, kw := range cat.keywords {
			n := CountPhrase(lower, kw.lower)
			if n == 0 {
				continue
			}
			match.Score += n
			match.Keywords = append(match.Keywords, domain.KeywordCount{Keyword: kw.phrase, Count: n})
		}
		if match.Score > 0 {
			result.Categories = append(result.Categories, match)
			result.Total += match.Score
		}
	}

	return result
}

// Score is a convenience wrapper for one-off scoring.
func Score(text string, taxonomy domain.Taxonomy) domain.ScoreResult {
	return NewScorer(taxonomy).Score(text)
}

// fold puts text in NFC form so precomposed and combining accents compare
// equal, then lower-cases it.
func fold(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// CountPhrase counts non-overlapping occurrences of phrase in text that are
// bounded by non-word runes. Both arguments must already be lower-cased.
// Word runes are Unicode letters, digits and '_', so accented letters
// count as part of a word.
func CountPhrase(text, phrase string) int {
	if phrase == "" {
		return 0
	}

	count := 0
	offset := 0
	for offset <= len(text)-len(phrase) {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(phrase)

		if boundedBefore(text, start, phrase) && boundedAfter(text, end, phrase) {
			count++
			offset = end
			continue
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return count
}

func boundedBefore(text string, start int, phrase string) bool {
	first, _ := utf8.DecodeRuneInString(phrase)
	if !isWordRune(first) || start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func boundedAfter(text string, end int, phrase string) bool {
	last, _ := utf8.DecodeLastRuneInString(phrase)
	if !isWordRune(last) || end == len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
