package classifier

import (
	"strings"

	"mindvibe/internal/domain"
)

// Lexicones del clasificador local. Son listas de subcadenas literales,
// no un modelo: se pueden extender sin tocar el pipeline.
var (
	positiveWords = []string{
		"happy", "excited", "joyful", "great", "amazing", "wonderful", "love",
		"grateful", "blessed", "fantastic", "awesome", "excellent", "perfect", "brilliant",
	}
	negativeWords = []string{
		"sad", "depressed", "angry", "frustrated", "anxious", "worried",
		"terrible", "awful", "horrible", "hate", "stressed", "overwhelmed", "upset", "disappointed",
	}
	neutralWords = []string{"okay", "fine", "normal", "regular", "usual", "average"}

	joyTriggers     = []string{"happy", "joy"}
	sadnessTriggers = []string{"sad", "crying", "depressed"}
	angerTriggers   = []string{"angry", "mad", "frustrated"}
	fearTriggers    = []string{"scared", "afraid", "anxious"}
)

// FallbackClassifier estima sentimiento y emociones por conteo de palabras
// clave. Es una funcion total: nunca falla, siempre devuelve una de
// POSITIVE/NEGATIVE/NEUTRAL.
type FallbackClassifier struct{}

// Classify analiza el texto contra los lexicones fijos.
func (FallbackClassifier) Classify(text string) domain.ClassificationResult {
	lower := strings.ToLower(text)

	positiveCount := countMatches(lower, positiveWords)
	negativeCount := countMatches(lower, negativeWords)

	var label string
	var score float64
	switch {
	case positiveCount > negativeCount:
		label = domain.SentimentPositive
		score = minFloat(0.9, 0.6+float64(positiveCount)*0.1)
	case negativeCount > positiveCount:
		label = domain.SentimentNegative
		score = minFloat(0.9, 0.6+float64(negativeCount)*0.1)
	default:
		label = domain.SentimentNeutral
		score = 0.5
	}

	// Las familias se chequean en orden fijo y pueden coexistir; el
	// resultado no queda ordenado por score.
	var emotions []domain.EmotionScore
	if containsAny(lower, joyTriggers) {
		emotions = append(emotions, domain.EmotionScore{Label: "joy", Score: 0.8})
	}
	if containsAny(lower, sadnessTriggers) {
		emotions = append(emotions, domain.EmotionScore{Label: "sadness", Score: 0.8})
	}
	if containsAny(lower, angerTriggers) {
		emotions = append(emotions, domain.EmotionScore{Label: "anger", Score: 0.7})
	}
	if containsAny(lower, fearTriggers) {
		emotions = append(emotions, domain.EmotionScore{Label: "fear", Score: 0.7})
	}

	return domain.ClassificationResult{
		SentimentLabel: label,
		SentimentScore: score,
		Emotions:       emotions,
	}
}

func countMatches(s string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			count++
		}
	}
	return count
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
