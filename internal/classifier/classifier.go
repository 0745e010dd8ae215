package classifier

import (
	"context"
	"errors"

	"mindvibe/internal/domain"
)

// ErrUnavailable indica que el servicio de clasificacion no entrego un
// resultado usable. Nunca se propaga al usuario final: el pipeline degrada
// al clasificador local.
var ErrUnavailable = errors.New("classification service unavailable")

// Classifier define la interfaz del clasificador remoto de texto.
// Cada eje (sentimiento, emocion) es una llamada independiente y devuelve
// los candidatos {label, score} crudos del modelo.
type Classifier interface {
	ClassifySentiment(ctx context.Context, text string) ([]domain.EmotionScore, error)
	ClassifyEmotions(ctx context.Context, text string) ([]domain.EmotionScore, error)
}
