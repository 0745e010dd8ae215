package service

import (
	"fmt"
	"strings"

	"mindvibe/internal/domain"
)

const maxRecommendations = 4

// Mensajes fijos de la rama de crisis. Cuando aplica, se devuelven
// exactamente estos cuatro y ninguna otra regla se ejecuta.
var crisisRecommendations = []string{
	"Please reach out to a mental health professional immediately",
	"Contact a crisis hotline: 988 (US) or your local emergency services",
	"Talk to a trusted friend, family member, or counselor right away",
	"Remember: You matter, and help is available",
}

// Etiquetas de personalizacion y contexto. Registran que regla aporto cada
// sugerencia; se reportan todas las que dispararon aunque el texto de la
// sugerencia haya quedado fuera del corte de 4.
const (
	TagCrisisIntervention   = "crisis_intervention"
	TagPersonalizedGreeting = "personalized_greeting"
	TagAnxietySupportArea   = "anxiety_support_area"
	TagStressManagement     = "stress_management"
	TagRelationshipSupport  = "relationship_support"
	TagOverthinkingPattern  = "overthinking_pattern"
	TagWorkContext          = "work_context"
	TagSleepContext         = "sleep_context"
	TagRelationshipContext  = "relationship_context"
)

// recommendationBuilder acumula sugerencias y etiquetas sin duplicados.
// El orden de acumulacion define la prioridad ante el corte final.
type recommendationBuilder struct {
	items []string
	seen  map[string]bool
	tags  []string
	fired map[string]bool
}

func newRecommendationBuilder() *recommendationBuilder {
	return &recommendationBuilder{
		seen:  make(map[string]bool),
		fired: make(map[string]bool),
	}
}

func (b *recommendationBuilder) add(items ...string) {
	for _, item := range items {
		if b.seen[item] {
			continue
		}
		b.seen[item] = true
		b.items = append(b.items, item)
	}
}

func (b *recommendationBuilder) tag(name string) {
	if b.fired[name] {
		return
	}
	b.fired[name] = true
	b.tags = append(b.tags, name)
}

// GenerateRecommendations produce la lista ordenada de sugerencias (≤4) y
// las etiquetas de las reglas que dispararon. El perfil es opcional: sin
// perfil solo corren las ramas de emocion, score y contexto.
func GenerateRecommendations(moodScore int, sentimentLabel string, emotions []domain.EmotionScore, text string, profile *domain.UserProfile) ([]string, []string) {
	// Rama terminal de crisis: corta toda otra logica.
	if moodScore < 25 {
		out := make([]string, len(crisisRecommendations))
		copy(out, crisisRecommendations)
		return out, []string{TagCrisisIntervention}
	}

	b := newRecommendationBuilder()
	lower := strings.ToLower(text)

	primaryEmotion := "neutral"
	if len(emotions) > 0 {
		primaryEmotion = strings.ToLower(emotions[0].Label)
	}

	// Las reglas de perfil van primero: ante el corte de 4 tienen prioridad
	// sobre las sugerencias genericas.
	if profile != nil {
		if moodScore < 50 && strings.TrimSpace(profile.Name) != "" {
			b.add(fmt.Sprintf("Hi %s, remember that difficult moments are temporary and you are not alone", strings.TrimSpace(profile.Name)))
			b.tag(TagPersonalizedGreeting)
		}

		anxietySignal := primaryEmotion == "fear" || strings.Contains(lower, "anxious") || strings.Contains(lower, "anxiety")
		if profile.HasSupportArea("anxiety") && anxietySignal && domain.IsAffirmative(profile.AnxietyMoments) {
			b.add(
				"Since anxiety is one of your focus areas, try a 3-minute guided breathing session right now",
				"Write down the worry that keeps returning and one small step you could take about it",
			)
			b.tag(TagAnxietySupportArea)
		}

		if profile.HasSupportArea("stress") && moodScore < 60 {
			b.add("Take a short break for a stress-relief exercise you enjoy, like stretching or a brief walk")
			b.tag(TagStressManagement)
		}

		if profile.HasSupportArea("relationship") && (strings.Contains(lower, "lonely") || strings.Contains(lower, "loneliness")) {
			b.add("Feeling lonely is hard - consider reaching out to one person from your support circle today")
			b.tag(TagRelationshipSupport)
		}

		if domain.IsAffirmative(profile.Overthinking) && (strings.Contains(lower, "thinking") || strings.Contains(lower, "mind")) {
			b.add("When your mind starts to spiral, schedule a 10-minute worry window and park the thought until then")
			b.tag(TagOverthinkingPattern)
		}
	}

	switch primaryEmotion {
	case "sadness":
		b.add(
			"Practice self-compassion - be kind to yourself during difficult times",
			"Try gentle movement like a short walk or stretching",
			"Consider reaching out to someone you trust",
		)
	case "anger":
		b.add(
			"Take 10 deep breaths to help regulate your nervous system",
			"Try progressive muscle relaxation to release physical tension",
			"Channel this energy into physical exercise if possible",
		)
	case "fear", "anxiety":
		b.add(
			"Practice the 5-4-3-2-1 grounding technique (5 things you see, 4 you hear, etc.)",
			"Try box breathing: 4 counts in, hold 4, out 4, hold 4",
			"Remind yourself that this feeling is temporary and will pass",
		)
	case "joy":
		b.add(
			"Savor this positive moment through mindful awareness",
			"Share your joy with someone you care about",
			"Use this positive energy to work toward a meaningful goal",
		)
	}

	if moodScore < 50 {
		b.add(
			"Focus on basic self-care: proper sleep, nutrition, and hydration",
			"Break large tasks into smaller, manageable steps",
			"Practice one act of self-kindness today",
		)
	} else if moodScore > 70 {
		b.add(
			"Use this positive momentum to tackle something you've been postponing",
			"Practice gratitude by writing down what's going well",
			"Consider helping someone else to amplify positive feelings",
		)
	}

	if strings.Contains(lower, "work") || strings.Contains(lower, "job") {
		b.add("Set clear boundaries between work and personal time")
		b.tag(TagWorkContext)
	}
	if strings.Contains(lower, "sleep") || strings.Contains(lower, "tired") {
		b.add("Prioritize getting 7-9 hours of quality sleep")
		b.tag(TagSleepContext)
	}
	if strings.Contains(lower, "relationship") {
		b.add("Practice open, honest communication with loved ones")
		b.tag(TagRelationshipContext)
	}

	items := b.items
	if len(items) > maxRecommendations {
		items = items[:maxRecommendations]
	}
	return items, b.tags
}
