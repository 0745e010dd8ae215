package service

import (
	"strings"
	"testing"

	"mindvibe/internal/domain"
)

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func TestGenerateRecommendations_CrisisBranchIsTerminal(t *testing.T) {
	profile := &domain.UserProfile{Name: "Ana", SupportAreas: []string{"anxiety", "stress"}, AnxietyMoments: "yes"}
	recs, tags := GenerateRecommendations(10, domain.SentimentNegative, []domain.EmotionScore{{Label: "sadness", Score: 0.9}}, "I feel worthless and tired from work", profile)

	if len(recs) != 4 {
		t.Fatalf("expected exactly 4 crisis lines, got %d", len(recs))
	}
	for i, want := range crisisRecommendations {
		if recs[i] != want {
			t.Fatalf("crisis line %d mismatch: %q", i, recs[i])
		}
	}
	if len(tags) != 1 || tags[0] != TagCrisisIntervention {
		t.Fatalf("expected only crisis_intervention tag, got %v", tags)
	}
}

func TestGenerateRecommendations_EmotionBranchByPrimaryEmotion(t *testing.T) {
	emotions := []domain.EmotionScore{{Label: "anger", Score: 0.8}, {Label: "sadness", Score: 0.6}}
	recs, _ := GenerateRecommendations(55, domain.SentimentNegative, emotions, "argued with my brother", nil)

	if len(recs) == 0 || !strings.Contains(recs[0], "deep breaths") {
		t.Fatalf("expected anger block first, got %v", recs)
	}
	if len(recs) > 4 {
		t.Fatalf("expected at most 4 recommendations, got %d", len(recs))
	}
}

func TestGenerateRecommendations_ScoreBandsAreDisjoint(t *testing.T) {
	low, _ := GenerateRecommendations(45, domain.SentimentNeutral, nil, "meh day overall", nil)
	if !containsItem(low, "Focus on basic self-care: proper sleep, nutrition, and hydration") {
		t.Fatalf("expected low band lines, got %v", low)
	}

	mid, _ := GenerateRecommendations(60, domain.SentimentNeutral, nil, "meh day overall", nil)
	if len(mid) != 0 {
		t.Fatalf("expected no band lines in 50-70, got %v", mid)
	}

	high, _ := GenerateRecommendations(80, domain.SentimentPositive, nil, "pretty solid day overall", nil)
	if !containsItem(high, "Practice gratitude by writing down what's going well") {
		t.Fatalf("expected high band lines, got %v", high)
	}
}

func TestGenerateRecommendations_ContextLinesAndTags(t *testing.T) {
	recs, tags := GenerateRecommendations(60, domain.SentimentNeutral, nil, "my job is draining and I barely sleep", nil)

	if !containsItem(recs, "Set clear boundaries between work and personal time") {
		t.Fatalf("expected work context line, got %v", recs)
	}
	if !containsItem(recs, "Prioritize getting 7-9 hours of quality sleep") {
		t.Fatalf("expected sleep context line, got %v", recs)
	}
	if !hasTag(tags, TagWorkContext) || !hasTag(tags, TagSleepContext) {
		t.Fatalf("expected work and sleep context tags, got %v", tags)
	}
}

func TestGenerateRecommendations_PersonalizationHasPriorityAndTagsSurviveTruncation(t *testing.T) {
	profile := &domain.UserProfile{
		Name:           "Ana",
		SupportAreas:   []string{"stress management"},
		AnxietyMoments: "no",
	}
	recs, tags := GenerateRecommendations(45, domain.SentimentNegative, nil, "too much work lately", profile)

	if len(recs) != 4 {
		t.Fatalf("expected truncation to 4, got %d", len(recs))
	}
	if !strings.Contains(recs[0], "Ana") {
		t.Fatalf("expected personalized greeting first, got %q", recs[0])
	}
	if !strings.Contains(recs[1], "stress-relief") {
		t.Fatalf("expected stress line second, got %q", recs[1])
	}
	// La linea de contexto laboral quedo fuera del corte, pero su tag se reporta.
	if containsItem(recs, "Set clear boundaries between work and personal time") {
		t.Fatalf("expected work line to be cut by priority order, got %v", recs)
	}
	if !hasTag(tags, TagPersonalizedGreeting) || !hasTag(tags, TagStressManagement) || !hasTag(tags, TagWorkContext) {
		t.Fatalf("expected greeting, stress and work tags, got %v", tags)
	}
}

func TestGenerateRecommendations_AnxietySupportRequiresAffirmativeFlag(t *testing.T) {
	base := domain.UserProfile{SupportAreas: []string{"anxiety"}}

	off := base
	off.AnxietyMoments = "no"
	_, tags := GenerateRecommendations(55, domain.SentimentNegative, []domain.EmotionScore{{Label: "fear", Score: 0.6}}, "anxious about tomorrow's exam", &off)
	if hasTag(tags, TagAnxietySupportArea) {
		t.Fatalf("expected no anxiety tag without affirmative flag, got %v", tags)
	}

	on := base
	on.AnxietyMoments = "sometimes"
	recs, tags := GenerateRecommendations(55, domain.SentimentNegative, []domain.EmotionScore{{Label: "fear", Score: 0.6}}, "anxious about tomorrow's exam", &on)
	if !hasTag(tags, TagAnxietySupportArea) {
		t.Fatalf("expected anxiety tag, got %v", tags)
	}
	if !strings.Contains(recs[0], "breathing") {
		t.Fatalf("expected anxiety technique first, got %v", recs)
	}
}

func TestGenerateRecommendations_OverthinkingAndRelationshipBranches(t *testing.T) {
	profile := &domain.UserProfile{
		SupportAreas: []string{"relationships"},
		Overthinking: "yes",
	}
	_, tags := GenerateRecommendations(65, domain.SentimentNeutral, nil, "feeling lonely, my mind keeps racing", profile)

	if !hasTag(tags, TagRelationshipSupport) {
		t.Fatalf("expected relationship support tag, got %v", tags)
	}
	if !hasTag(tags, TagOverthinkingPattern) {
		t.Fatalf("expected overthinking tag, got %v", tags)
	}
}

func TestGenerateRecommendations_NoProfileDegradesGracefully(t *testing.T) {
	recs, tags := GenerateRecommendations(45, domain.SentimentNegative, []domain.EmotionScore{{Label: "sadness", Score: 0.7}}, "rough couple of days", nil)

	if len(recs) == 0 || len(recs) > 4 {
		t.Fatalf("expected 1-4 recommendations without profile, got %d", len(recs))
	}
	for _, tag := range tags {
		switch tag {
		case TagPersonalizedGreeting, TagAnxietySupportArea, TagStressManagement, TagRelationshipSupport, TagOverthinkingPattern:
			t.Fatalf("unexpected profile tag without profile: %v", tags)
		}
	}
}

func containsItem(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
