package domain

import (
	"strings"
	"time"
)

// UserProfile son los datos de onboarding. El pipeline solo los lee;
// la captura y mutacion pertenecen a la capa de onboarding.
type UserProfile struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name,omitempty"`
	Gender                 string    `json:"gender,omitempty"`
	Age                    string    `json:"age,omitempty"`
	SelfKnowledge          string    `json:"self_knowledge,omitempty"`
	BottlingFeelings       string    `json:"bottling_feelings,omitempty"`
	Overthinking           string    `json:"overthinking,omitempty"`
	AnxietyMoments         string    `json:"anxiety_moments,omitempty"`
	ReferredByProfessional string    `json:"referred_by_professional,omitempty"`
	SupportAreas           []string  `json:"support_areas,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// HasSupportArea busca una subcadena dentro de las areas de apoyo declaradas.
// El formulario guarda valores libres ("anxiety", "stress management", ...).
func (p *UserProfile) HasSupportArea(keyword string) bool {
	if p == nil {
		return false
	}
	keyword = strings.ToLower(keyword)
	for _, area := range p.SupportAreas {
		if strings.Contains(strings.ToLower(area), keyword) {
			return true
		}
	}
	return false
}

// IsAffirmative interpreta respuestas libres del formulario como afirmativas.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "always", "often", "sometimes":
		return true
	default:
		return false
	}
}
