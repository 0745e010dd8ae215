package classifier

import (
	"context"

	"mindvibe/internal/domain"
)

// MockClassifier permite tests sin llamar a la API real.
type MockClassifier struct {
	SentimentCandidates []domain.EmotionScore
	EmotionCandidates   []domain.EmotionScore
	SentimentErr        error
	EmotionErr          error
}

func (m *MockClassifier) ClassifySentiment(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	return m.SentimentCandidates, m.SentimentErr
}

func (m *MockClassifier) ClassifyEmotions(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	return m.EmotionCandidates, m.EmotionErr
}
