package domain

import "time"

type Provider string

const (
	ProviderFacebook  Provider = "facebook"
	ProviderGoogle    Provider = "google"
	ProviderTikTok    Provider = "tiktok"
	ProviderLinkedIn  Provider = "linkedin"
	ProviderInstagram Provider = "instagram"
)

type IntegrationStatus string

const (
	IntegrationStatusConnected    IntegrationStatus = "connected"
	IntegrationStatusDisconnected IntegrationStatus = "disconnected"
	IntegrationStatusExpired      IntegrationStatus = "expired"
)

// Integration é a conexão de um usuário com uma plataforma de anúncios.
// Existe no máximo uma por (user_id, provider).
type Integration struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	Provider          Provider          `json:"provider"`
	ProviderAccountID string            `json:"provider_account_id"`
	AccessToken       string            `json:"-"`
	TokenExpiresAt    *time.Time        `json:"token_expires_at"`
	Status            IntegrationStatus `json:"status"`
	LastSyncAt        *time.Time        `json:"last_sync_at"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (i *Integration) IsConnected() bool {
	return i != nil && i.Status == IntegrationStatusConnected && i.AccessToken != ""
}

// TokenExpiresWithin indica se o token expira dentro da janela informada.
// Tokens sem data de expiração conhecida são tratados como expirando.
func (i *Integration) TokenExpiresWithin(window time.Duration, now time.Time) bool {
	if i.TokenExpiresAt == nil {
		return true
	}

	return i.TokenExpiresAt.Sub(now) < window
}
