package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mindvibe/internal/classifier"
	"mindvibe/internal/domain"
	"mindvibe/internal/email"
	"mindvibe/internal/repository"
)

var (
	// ErrTextTooShort es la unica precondicion dura del pipeline.
	ErrTextTooShort = errors.New("text too short for analysis")
	// ErrPersistence distingue fallas de guardado de fallas de analisis.
	ErrPersistence = errors.New("could not save mood entry")
)

const minTextLength = 5

// AnalysisService orquesta el pipeline de analisis: clasificacion con
// fallback, score, categoria, nivel de crisis y recomendaciones.
type AnalysisService struct {
	classifier classifier.Classifier
	fallback   classifier.FallbackClassifier
	entries    repository.MoodEntryRepository
	profiles   repository.UserProfileRepository
	alerts     email.Sender
	alertEmail string
	logger     *zap.Logger
}

func NewAnalysisService(
	cls classifier.Classifier,
	entries repository.MoodEntryRepository,
	profiles repository.UserProfileRepository,
	alerts email.Sender,
	alertEmail string,
	logger *zap.Logger,
) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		classifier: cls,
		entries:    entries,
		profiles:   profiles,
		alerts:     alerts,
		alertEmail: alertEmail,
		logger:     logger,
	}
}

// Analyze procesa un texto y devuelve el registro de analisis ya persistido.
// userID es opcional: sin perfil la personalizacion degrada a las ramas
// genericas, nunca es un error.
func (s *AnalysisService) Analyze(ctx context.Context, text, userID string) (domain.MoodAnalysis, error) {
	text = strings.TrimSpace(text)
	if len(text) < minTextLength {
		return domain.MoodAnalysis{}, ErrTextTooShort
	}

	profile := s.lookupProfile(ctx, userID)
	result := s.classify(ctx, text)

	moodScore := CalculateMoodScore(result.SentimentLabel, result.SentimentScore, result.Emotions, text)
	category, color := MoodCategory(moodScore)
	crisisLevel := DetectCrisisLevel(text, result.Emotions)
	recommendations, tags := GenerateRecommendations(moodScore, result.SentimentLabel, result.Emotions, text, profile)

	emotions := result.Emotions
	if len(emotions) > 5 {
		emotions = emotions[:5]
	}

	analysis := domain.MoodAnalysis{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Text:                text,
		MoodScore:           moodScore,
		MoodCategory:        category,
		Color:               color,
		SentimentLabel:      result.SentimentLabel,
		SentimentScore:      math.Round(result.SentimentScore*1000) / 1000,
		Emotions:            emotions,
		Recommendations:     recommendations,
		CrisisLevel:         crisisLevel,
		PersonalizationTags: tags,
		Timestamp:           time.Now().UTC(),
	}

	if err := s.entries.Create(ctx, analysis); err != nil {
		s.logger.Error("save mood entry failed", zap.Error(err), zap.String("entry_id", analysis.ID))
		return domain.MoodAnalysis{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.maybeAlert(analysis)

	return analysis, nil
}

// classify consulta los dos ejes del clasificador remoto en paralelo y
// decide si usar sus resultados o degradar por completo al fallback.
// No existe estado parcial: sentimiento inusable descarta tambien las
// emociones remotas.
func (s *AnalysisService) classify(ctx context.Context, text string) domain.ClassificationResult {
	var (
		wg        sync.WaitGroup
		sentCands []domain.EmotionScore
		emoCands  []domain.EmotionScore
		sentErr   error
		emoErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sentCands, sentErr = s.classifier.ClassifySentiment(ctx, text)
	}()
	go func() {
		defer wg.Done()
		emoCands, emoErr = s.classifier.ClassifyEmotions(ctx, text)
	}()
	wg.Wait()

	if sentErr != nil || len(sentCands) == 0 {
		s.logger.Info("classifier unavailable, using fallback analysis")
		return s.fallback.Classify(text)
	}

	top := sentCands[0]
	for _, c := range sentCands[1:] {
		if c.Score > top.Score {
			top = c
		}
	}

	var emotions []domain.EmotionScore
	if emoErr == nil {
		emotions = make([]domain.EmotionScore, len(emoCands))
		copy(emotions, emoCands)
		sort.SliceStable(emotions, func(i, j int) bool {
			return emotions[i].Score > emotions[j].Score
		})
	}

	return domain.ClassificationResult{
		SentimentLabel: top.Label,
		SentimentScore: top.Score,
		Emotions:       emotions,
	}
}

func (s *AnalysisService) lookupProfile(ctx context.Context, userID string) *domain.UserProfile {
	if userID == "" || s.profiles == nil {
		return nil
	}
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("profile lookup failed", zap.Error(err), zap.String("user_id", userID))
		}
		return nil
	}
	return &profile
}

// maybeAlert dispara la notificacion de crisis de manera asincrona para no
// bloquear la respuesta; las fallas solo se loguean.
func (s *AnalysisService) maybeAlert(analysis domain.MoodAnalysis) {
	if analysis.CrisisLevel < 2 || s.alerts == nil || s.alertEmail == "" {
		return
	}
	go func(a domain.MoodAnalysis) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.alerts.SendCrisisAlert(ctx, s.alertEmail, a.CrisisLevel, a.MoodScore, a.MoodCategory); err != nil {
			s.logger.Warn("crisis alert send failed", zap.Error(err), zap.Int("crisis_level", a.CrisisLevel))
			return
		}
		s.logger.Info("crisis alert sent", zap.Int("crisis_level", a.CrisisLevel), zap.String("entry_id", a.ID))
	}(analysis)
}
