package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para notificaciones de crisis por correo.
type Sender interface {
	SendCrisisAlert(ctx context.Context, toEmail string, crisisLevel, moodScore int, category string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendCrisisAlert(_ context.Context, _ string, _, _ int, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
