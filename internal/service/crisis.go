package service

import (
	"strings"

	"mindvibe/internal/domain"
)

/*
========================
 Indicadores de crisis
========================
*/

// Listas en orden estricto de prioridad: critica > severa > moderada.
var (
	crisisCriticalPhrases = []string{
		"kill myself", "suicide", "end it all", "want to die",
		"no point living", "everyone better without me",
	}
	crisisSevereIndicators = []string{
		"can't go on", "hopeless", "worthless", "nothing matters",
		"giving up", "can't take it", "too much pain",
	}
	crisisModerateIndicators = []string{
		"very depressed", "extremely sad", "completely alone",
		"no one understands", "everything is wrong",
	}
)

// DetectCrisisLevel devuelve un nivel ordinal 0-3. Es una heuristica
// textual/estadistica de mejor esfuerzo, no una determinacion clinica.
// La intensidad emocional puede subir el nivel, nunca bajarlo.
func DetectCrisisLevel(text string, emotions []domain.EmotionScore) int {
	level := 0
	lower := strings.ToLower(text)

	if containsAny(lower, crisisCriticalPhrases) {
		level = 3
	} else if containsAny(lower, crisisSevereIndicators) {
		level = 2
	} else if containsAny(lower, crisisModerateIndicators) {
		level = 1
	}

	sadness := emotionScore(emotions, "sadness")
	fear := emotionScore(emotions, "fear")
	if sadness > 0.8 || fear > 0.7 {
		if level < 2 {
			level = 2
		}
	}

	return level
}

func emotionScore(emotions []domain.EmotionScore, label string) float64 {
	for _, e := range emotions {
		if strings.EqualFold(e.Label, label) {
			return e.Score
		}
	}
	return 0
}
