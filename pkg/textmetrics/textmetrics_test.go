package textmetrics

import (
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "three sentences",
			text: "The cat sat. The dog ran! Did the bird fly? Yes.",
			want: 4,
		},
		{
			name: "empty text",
			text: "",
			want: 0,
		},
		{
			name: "no terminator",
			text: "a fragment without punctuation",
			want: 1,
		},
		{
			name: "multiple terminators collapse",
			text: "Really?! Yes. Sure...",
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if len(got) != tt.want {
				t.Errorf("SplitSentences(%q) = %d sentences, want %d", tt.text, len(got), tt.want)
			}
		})
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"a", 1},
		{"it", 1},
		{"cat", 1},
		{"table", 1}, // trailing e stripped: "tabl" has one vowel group
		{"banana", 3},
		{"readability", 5},
		{"hmm", 1}, // no vowel groups at all, floor of 1
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.want {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestFleschKincaidReadingEase(t *testing.T) {
	if got := FleschKincaidReadingEase(""); got != 0 {
		t.Errorf("FleschKincaidReadingEase(\"\") = %v, want 0", got)
	}

	// Short simple sentences should land in the easy band.
	easy := FleschKincaidReadingEase("The cat sat. The dog ran. The sun is up.")
	if easy < 90 || easy > 100 {
		t.Errorf("easy text score = %v, want within [90,100]", easy)
	}

	// Dense polysyllabic prose should score far lower than simple prose.
	hard := FleschKincaidReadingEase(
		"Organizational interoperability considerations necessitate comprehensive architectural documentation methodologies.")
	if hard >= easy {
		t.Errorf("hard text score %v should be below easy text score %v", hard, easy)
	}

	// Clamping: pathological input never leaves [0,100].
	if hard < 0 || hard > 100 {
		t.Errorf("score %v outside [0,100]", hard)
	}
}

func TestAverageSentenceLength(t *testing.T) {
	if got := AverageSentenceLength(""); got != 0 {
		t.Errorf("AverageSentenceLength(\"\") = %v, want 0", got)
	}

	got := AverageSentenceLength("One two three. Four five six seven.")
	if got != 3.5 {
		t.Errorf("AverageSentenceLength() = %v, want 3.5", got)
	}
}

func TestJargonDensity(t *testing.T) {
	if got := JargonDensity(""); got != 0 {
		t.Errorf("JargonDensity(\"\") = %v, want 0", got)
	}

	clean := JargonDensity("The report explains the results in plain words for every reader.")
	if clean != 0 {
		t.Errorf("clean text density = %v, want 0", clean)
	}

	// 2 jargon hits in 10 words = 20 per 100 words.
	dense := JargonDensity("We leverage synergy across teams to ship new features faster")
	if dense != 20 {
		t.Errorf("dense text density = %v, want 20", dense)
	}
}

func TestTopKeywords(t *testing.T) {
	text := "gopher gopher gopher compiler compiler runtime the the the the"
	got := TopKeywords(text, 2)

	want := []string{"gopher", "compiler"}
	if len(got) != len(want) {
		t.Fatalf("TopKeywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopKeywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordFrequencySkipsStopwords(t *testing.T) {
	counts := WordFrequency("the quick fox and the lazy dog")
	if _, ok := counts["the"]; ok {
		t.Error("WordFrequency() should not count stopword \"the\"")
	}
	if counts["fox"] != 1 {
		t.Errorf("counts[\"fox\"] = %d, want 1", counts["fox"])
	}
}
