// Package textmetrics provides pure readability and density metrics over
// plain text. Every function is total: empty or degenerate input yields 0.
package textmetrics

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)
	wordRe          = regexp.MustCompile(`[a-zA-Z']+`)
	vowelGroupRe    = regexp.MustCompile(`[aeiouy]+`)
	nonLetterRe     = regexp.MustCompile(`[^a-z]`)
)

// jargonPhrases are bureaucratic/corporate phrases counted by JargonDensity.
// Matched case-insensitively as whole words/phrases.
var jargonPhrases = []string{
	"utilize",
	"leverage",
	"synergy",
	"paradigm",
	"holistic",
	"robust",
	"scalable",
	"best-in-class",
	"cutting-edge",
	"state-of-the-art",
	"value-added",
	"core competency",
	"going forward",
	"circle back",
	"touch base",
	"low-hanging fruit",
	"move the needle",
	"mission-critical",
	"thought leadership",
	"win-win",
	"deep dive",
	"drill down",
	"operationalize",
	"incentivize",
	"actionable insights",
}

var jargonPatterns = compilePhrasePatterns(jargonPhrases)

func compilePhrasePatterns(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return patterns
}

// SplitSentences splits text into sentences on `.!?` followed by whitespace.
// Empty fragments are dropped.
func SplitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Words returns the alphabetic word runs (apostrophes included) in text.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// CountSyllables estimates syllables in a single word by counting vowel
// groups after stripping a trailing 'e'. Words of length <= 2 count as one.
func CountSyllables(word string) int {
	w := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 2 {
		return 1
	}
	w = strings.TrimSuffix(w, "e")
	groups := len(vowelGroupRe.FindAllString(w, -1))
	if groups < 1 {
		return 1
	}
	return groups
}

// FleschKincaidReadingEase computes the Flesch-Kincaid reading ease score
// for text, clamped to [0,100] and rounded to one decimal. Text with no
// sentences or no words scores 0.
func FleschKincaidReadingEase(text string) float64 {
	sentences := SplitSentences(text)
	words := Words(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round1(score)
}

// AverageSentenceLength returns words per sentence rounded to one decimal,
// or 0 when the text has no sentences.
func AverageSentenceLength(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	words := Words(text)
	return round1(float64(len(words)) / float64(len(sentences)))
}

// JargonDensity counts jargon phrase occurrences per 100 words, rounded to
// two decimals. Empty text scores 0.
func JargonDensity(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}

	occurrences := 0
	for _, pattern := range jargonPatterns {
		occurrences += len(pattern.FindAllStringIndex(text, -1))
	}

	return round2(float64(occurrences) * 100 / float64(len(words)))
}

// PhraseDensity counts occurrences of the given phrases (case-insensitive,
// whole-phrase) per 100 words. Used by analyzers with their own phrase lists.
func PhraseDensity(text string, patterns []*regexp.Regexp) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	occurrences := 0
	for _, pattern := range patterns {
		occurrences += len(pattern.FindAllStringIndex(text, -1))
	}
	return float64(occurrences) * 100 / float64(len(words))
}

// CompilePhrases builds case-insensitive whole-phrase patterns for
// PhraseDensity callers.
func CompilePhrases(phrases []string) []*regexp.Regexp {
	return compilePhrasePatterns(phrases)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
