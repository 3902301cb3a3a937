package domain

import (
	"time"
)

// WebhookEndpoint mapeia uma conta para o webhook de chat que recebe os
// alertas de mudança de status. A ausência de mapeamento desabilita a
// notificação para a conta, sem erro.
type WebhookEndpoint struct {
	AccountID string    `json:"account_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
