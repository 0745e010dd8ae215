package service

import (
	"testing"

	"mindvibe/internal/domain"
)

func TestDetectCrisisLevel_PhrasePriorities(t *testing.T) {
	cases := []struct {
		text  string
		level int
	}{
		{"I want to kill myself, there's no point anymore", 3},
		{"everything feels hopeless and I am giving up", 2},
		{"I feel very depressed and completely alone", 1},
		{"had a decent lunch with a friend", 0},
	}
	for _, tc := range cases {
		if got := DetectCrisisLevel(tc.text, nil); got != tc.level {
			t.Fatalf("text %q: expected level %d, got %d", tc.text, tc.level, got)
		}
	}
}

func TestDetectCrisisLevel_EmotionIntensityRaisesToTwo(t *testing.T) {
	sad := []domain.EmotionScore{{Label: "sadness", Score: 0.85}}
	if got := DetectCrisisLevel("an ordinary day", sad); got != 2 {
		t.Fatalf("expected sadness > 0.8 to raise level to 2, got %d", got)
	}

	fear := []domain.EmotionScore{{Label: "fear", Score: 0.75}}
	if got := DetectCrisisLevel("I feel very depressed today honestly", fear); got != 2 {
		t.Fatalf("expected fear > 0.7 to raise moderate to 2, got %d", got)
	}
}

func TestDetectCrisisLevel_EmotionNeverDowngrades(t *testing.T) {
	emotions := []domain.EmotionScore{{Label: "sadness", Score: 0.95}}
	if got := DetectCrisisLevel("I think about suicide a lot", emotions); got != 3 {
		t.Fatalf("expected phrase level 3 to stand, got %d", got)
	}
}

func TestDetectCrisisLevel_BelowThresholdEmotionsIgnored(t *testing.T) {
	emotions := []domain.EmotionScore{
		{Label: "sadness", Score: 0.8},
		{Label: "fear", Score: 0.7},
	}
	if got := DetectCrisisLevel("quiet afternoon", emotions); got != 0 {
		t.Fatalf("expected thresholds to be strict, got %d", got)
	}
}

func TestDetectCrisisLevel_MonotonicUnderCriticalPhrase(t *testing.T) {
	texts := []string{
		"had a decent lunch with a friend",
		"everything feels hopeless today",
		"I feel very depressed and completely alone",
	}
	for _, base := range texts {
		before := DetectCrisisLevel(base, nil)
		after := DetectCrisisLevel(base+" and I want to die", nil)
		if after < before {
			t.Fatalf("adding a critical phrase lowered the level for %q: %d -> %d", base, before, after)
		}
		if after != 3 {
			t.Fatalf("expected critical phrase to force level 3, got %d", after)
		}
	}
}

func TestDetectCrisisLevel_Idempotent(t *testing.T) {
	emotions := []domain.EmotionScore{{Label: "fear", Score: 0.72}}
	first := DetectCrisisLevel("nothing matters anymore", emotions)
	second := DetectCrisisLevel("nothing matters anymore", emotions)
	if first != second {
		t.Fatalf("expected pure function, got %d then %d", first, second)
	}
}
