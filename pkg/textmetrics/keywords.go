package textmetrics

import (
	"sort"
	"strings"
)

// stopwords are high-frequency words excluded from keyword extraction.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"do": {}, "does": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "his": {}, "how": {}, "i": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"just": {}, "like": {}, "more": {}, "most": {}, "my": {}, "no": {},
	"not": {}, "of": {}, "on": {}, "one": {}, "or": {}, "other": {},
	"our": {}, "out": {}, "over": {}, "she": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "to": {},
	"up": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}

// WordFrequency returns per-word counts over text, lowercased, punctuation
// trimmed, stopwords excluded.
func WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if _, stop := stopwords[word]; stop || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

// TopKeywords returns the n most frequent non-stopword words in text,
// most frequent first.
func TopKeywords(text string, n int) []string {
	frequencies := WordFrequency(text)

	type wordCount struct {
		word  string
		count int
	}
	counts := make([]wordCount, 0, len(frequencies))
	for w, c := range frequencies {
		counts = append(counts, wordCount{w, c})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	limit := n
	if len(counts) < limit {
		limit = len(counts)
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = counts[i].word
	}
	return top
}
