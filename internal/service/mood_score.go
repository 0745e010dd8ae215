package service

import (
	"strings"

	"mindvibe/internal/domain"
)

/*
========================
 Ajustes por palabra clave
========================
*/

// Los chequeos criticos se evaluan antes que los positivos; si ambos
// coinciden gana el tope critico.
var (
	criticalKeywords = []string{
		"suicide", "kill myself", "end it all", "no point", "worthless",
	}
	positiveKeywords = []string{
		"excited", "happy", "grateful", "amazing", "wonderful", "love",
	}
)

// CalculateMoodScore convierte (sentimiento, emociones, texto) en un score
// entero 0-100. Funcion pura: mismas entradas, mismo resultado.
func CalculateMoodScore(sentimentLabel string, sentimentScore float64, emotions []domain.EmotionScore, text string) int {
	base := 50.0

	if domain.IsPositiveLabel(sentimentLabel) {
		base = 50 + sentimentScore*50
	} else if domain.IsNegativeLabel(sentimentLabel) {
		base = 50 - sentimentScore*50
	}

	// Solo pesan las tres emociones mas fuertes.
	top := emotions
	if len(top) > 3 {
		top = top[:3]
	}
	for _, e := range top {
		switch strings.ToLower(e.Label) {
		case "joy", "happiness", "love", "optimism":
			base += e.Score * 20
		case "sadness", "anger", "fear", "disgust":
			base -= e.Score * 20
		case "surprise":
			base += e.Score * 5
		}
	}

	lower := strings.ToLower(text)
	if containsAny(lower, criticalKeywords) {
		if base > 15 {
			base = 15
		}
	} else if containsAny(lower, positiveKeywords) {
		if base < 70 {
			base = 70
		}
	}

	if base < 0 {
		base = 0
	}
	if base > 100 {
		base = 100
	}
	return int(base)
}

// MoodCategory mapea el score a (categoria, color hex) por umbrales
// descendentes.
func MoodCategory(moodScore int) (string, string) {
	switch {
	case moodScore >= 85:
		return "Excellent", "#10b981"
	case moodScore >= 70:
		return "Very Good", "#22d3ee"
	case moodScore >= 55:
		return "Good", "#3b82f6"
	case moodScore >= 40:
		return "Fair", "#f59e0b"
	case moodScore >= 25:
		return "Poor", "#f97316"
	default:
		return "Critical", "#ef4444"
	}
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}
