package domain

import (
	"strings"
	"time"
)

// Etiquetas de sentimiento normalizadas. El clasificador remoto puede
// devolver LABEL_0/LABEL_2 segun el modelo; el fallback usa POSITIVE/NEGATIVE.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// IsPositiveLabel reporta si la etiqueta equivale a sentimiento positivo.
func IsPositiveLabel(label string) bool {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case SentimentPositive, "LABEL_2":
		return true
	default:
		return false
	}
}

// IsNegativeLabel reporta si la etiqueta equivale a sentimiento negativo.
func IsNegativeLabel(label string) bool {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case SentimentNegative, "LABEL_0":
		return true
	default:
		return false
	}
}

// EmotionScore es un candidato {label, score} devuelto por un clasificador.
type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassificationResult agrupa sentimiento y emociones de un mismo texto.
// Las emociones de origen remoto vienen ordenadas por score descendente;
// las del fallback salen en el orden de chequeo de familias.
type ClassificationResult struct {
	SentimentLabel string
	SentimentScore float64
	Emotions       []EmotionScore
}

// MoodAnalysis es el registro inmutable que produce el pipeline por cada texto.
type MoodAnalysis struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"user_id,omitempty"`
	Text                string         `json:"-"`
	MoodScore           int            `json:"mood_score"`
	MoodCategory        string         `json:"mood_category"`
	Color               string         `json:"color"`
	SentimentLabel      string         `json:"sentiment_label"`
	SentimentScore      float64        `json:"sentiment_score"`
	Emotions            []EmotionScore `json:"emotions"`
	Recommendations     []string       `json:"recommendations"`
	CrisisLevel         int            `json:"crisis_level"`
	PersonalizationTags []string       `json:"personalization_tags,omitempty"`
	Timestamp           time.Time      `json:"timestamp"`
}

// RecommendationFeedback guarda la valoracion del usuario sobre las sugerencias.
type RecommendationFeedback struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entry_id"`
	Helpful   bool      `json:"helpful"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStats resume las entradas recientes del historial.
type HistoryStats struct {
	TotalEntries  int     `json:"total_entries"`
	AverageMood   float64 `json:"average_mood"`
	WeeklyAverage float64 `json:"weekly_average"`
	Trend         string  `json:"trend"`
	CrisisAlerts  int     `json:"crisis_alerts"`
}
