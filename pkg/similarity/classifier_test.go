package similarity

import (
	"testing"

	"github.com/dtnitsch/llm-readability/models"
)

func score(title, intro, body, full float64) models.SimilarityScore {
	return models.SimilarityScore{
		URLA:  "https://example.com/a",
		URLB:  "https://example.com/b",
		Title: title,
		Intro: intro,
		Body:  body,
		Full:  full,
	}
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name string
		s    models.SimilarityScore
		want string
	}{
		{
			name: "definite duplicate",
			s:    score(0.76, 0.70, 0.80, 0.85),
			want: models.RelDefiniteDuplicate,
		},
		{
			name: "duplicate boundary values match",
			s:    score(0.75, 0.0, 0.78, 0.0),
			want: models.RelDefiniteDuplicate,
		},
		{
			name: "near duplicate",
			s:    score(0.50, 0.68, 0.72, 0.70),
			want: models.RelNearDuplicate,
		},
		{
			name: "intent collision",
			s:    score(0.85, 0.30, 0.40, 0.45),
			want: models.RelIntentCollision,
		},
		{
			name: "collision blocked by high body falls through",
			s:    score(0.85, 0.30, 0.62, 0.45),
			want: models.RelPotentialCannibalization,
		},
		{
			name: "potential cannibalization",
			s:    score(0.65, 0.40, 0.50, 0.55),
			want: models.RelPotentialCannibalization,
		},
		{
			name: "template overlap",
			s:    score(0.30, 0.30, 0.40, 0.80),
			want: models.RelTemplateOverlap,
		},
		{
			name: "unique",
			s:    score(0.10, 0.15, 0.20, 0.25),
			want: models.RelUnique,
		},
		{
			name: "all zeros is unique",
			s:    score(0, 0, 0, 0),
			want: models.RelUnique,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.s)
			if got.Classification != tt.want {
				t.Errorf("Classify() = %q, want %q", got.Classification, tt.want)
			}
		})
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// Tuple satisfies both duplicate and near-duplicate conditions; the
	// earlier rule must win.
	got := Classify(score(0.76, 0.70, 0.80, 0.85))
	if got.Classification != models.RelDefiniteDuplicate {
		t.Errorf("Classify() = %q, want %q", got.Classification, models.RelDefiniteDuplicate)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Sweep a coarse grid; every tuple must land in exactly one category.
	steps := []float64{0, 0.25, 0.5, 0.62, 0.75, 0.9, 1}
	for _, title := range steps {
		for _, intro := range steps {
			for _, body := range steps {
				for _, full := range steps {
					got := Classify(score(title, intro, body, full))
					if got.Classification == "" {
						t.Fatalf("no classification for (%v,%v,%v,%v)", title, intro, body, full)
					}
					if got.Confidence < 0 || got.Confidence > 100 {
						t.Fatalf("confidence %d outside [0,100] for (%v,%v,%v,%v)",
							got.Confidence, title, intro, body, full)
					}
				}
			}
		}
	}
}

func TestClassifyConfidenceAndSummary(t *testing.T) {
	got := Classify(score(0.76, 0.701, 0.803, 0.85))

	// (0.803 + 0.76) / 2 = 0.7815 -> 78%.
	if got.Confidence != 78 {
		t.Errorf("Confidence = %d, want 78", got.Confidence)
	}
	if got.Similarities.Body != 0.80 {
		t.Errorf("summary Body = %v, want 0.80", got.Similarities.Body)
	}
	if got.Similarities.Intro != 0.70 {
		t.Errorf("summary Intro = %v, want 0.70", got.Similarities.Intro)
	}
	if got.RecommendedAction == "" || got.Reasoning == "" {
		t.Error("classification must carry an action and reasoning")
	}
}
