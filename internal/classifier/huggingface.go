package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mindvibe/internal/domain"
)

// HFClient implementa Classifier contra la Inference API de Hugging Face.
// Toda falla de transporte o de formato se normaliza a ErrUnavailable.
type HFClient struct {
	sentimentURL string
	emotionURL   string
	apiKey       string
	client       *http.Client
	retryWait    time.Duration
	logger       *zap.Logger
}

// NewHFClient construye un cliente para los dos modelos de inferencia.
// retryWait es la espera fija antes del unico reintento cuando el modelo
// reporta que esta cargando (HTTP 503).
func NewHFClient(sentimentURL, emotionURL, apiKey string, timeout, retryWait time.Duration, logger *zap.Logger) *HFClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HFClient{
		sentimentURL: sentimentURL,
		emotionURL:   emotionURL,
		apiKey:       apiKey,
		client:       &http.Client{Timeout: timeout},
		retryWait:    retryWait,
		logger:       logger,
	}
}

// ClassifySentiment devuelve los candidatos de polaridad para el texto.
func (c *HFClient) ClassifySentiment(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	return c.query(ctx, c.sentimentURL, text)
}

// ClassifyEmotions devuelve los candidatos de emocion para el texto.
func (c *HFClient) ClassifyEmotions(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	return c.query(ctx, c.emotionURL, text)
}

// CheckReachable hace una inferencia de prueba para el health check.
func (c *HFClient) CheckReachable(ctx context.Context) bool {
	_, err := c.query(ctx, c.sentimentURL, "I am feeling good today")
	return err == nil
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

func (c *HFClient) query(ctx context.Context, apiURL, text string) ([]domain.EmotionScore, error) {
	body, status, err := c.post(ctx, apiURL, text)
	if err != nil {
		c.logger.Warn("classifier request failed", zap.String("url", apiURL), zap.Error(err))
		return nil, ErrUnavailable
	}

	// 503 = modelo cargando: una espera fija y exactamente un reintento.
	if status == http.StatusServiceUnavailable {
		select {
		case <-time.After(c.retryWait):
		case <-ctx.Done():
			return nil, ErrUnavailable
		}
		body, status, err = c.post(ctx, apiURL, text)
		if err != nil {
			c.logger.Warn("classifier retry failed", zap.String("url", apiURL), zap.Error(err))
			return nil, ErrUnavailable
		}
	}

	if status >= 400 {
		c.logger.Warn("classifier error status", zap.String("url", apiURL), zap.Int("status", status))
		return nil, ErrUnavailable
	}

	candidates, err := parseCandidates(body)
	if err != nil {
		c.logger.Warn("classifier malformed response", zap.String("url", apiURL), zap.Error(err))
		return nil, ErrUnavailable
	}
	return candidates, nil
}

func (c *HFClient) post(ctx context.Context, apiURL, text string) ([]byte, int, error) {
	payload, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// parseCandidates acepta las dos formas que devuelve la Inference API:
// [[{label, score}, ...]] para estos modelos, o [{label, score}, ...] plano.
func parseCandidates(body []byte) ([]domain.EmotionScore, error) {
	var nested [][]domain.EmotionScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, fmt.Errorf("empty candidate list")
		}
		return nested[0], nil
	}

	var flat []domain.EmotionScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("empty candidate list")
	}
	return flat, nil
}
