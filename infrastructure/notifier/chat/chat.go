package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

// Notifier entrega o alerta de uma execução ao webhook de chat da conta.
// A entrega é sempre melhor esforço: o erro retornado existe para o chamador
// registrar, nunca para interromper a execução. Conta sem webhook cadastrado
// é no-op silencioso.
type Notifier interface {
	Notify(ctx context.Context, account *domain.AdAccount, message string) error
}

type Service struct {
	webhookRepo repository.WebhookRepository
	httpClient  *http.Client
}

func NewService(webhookRepo repository.WebhookRepository) *Service {
	return &Service{
		webhookRepo: webhookRepo,
		httpClient:  &http.Client{},
	}
}

type chatMessage struct {
	Text string `json:"text"`
}

func (s *Service) Notify(ctx context.Context, account *domain.AdAccount, message string) error {
	endpoint, err := s.webhookRepo.GetByAccountID(account.ID)
	if err != nil {
		return fmt.Errorf("erro ao resolver webhook da conta %s: %w", account.ID, err)
	}

	if endpoint == nil || endpoint.URL == "" {
		logrus.WithField("account_id", account.ID).Debug("Conta sem webhook cadastrado, alerta não enviado")
		return nil
	}

	payload, err := json.Marshal(chatMessage{Text: message})
	if err != nil {
		return fmt.Errorf("erro ao montar payload do alerta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição do alerta: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar alerta: %w", err)
	}
	defer resp.Body.Close()

	// O corpo é irrelevante em sucesso, mas precisa ser drenado.
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook respondeu status %d: %s", resp.StatusCode, string(body))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
	}).Debug("Alerta enviado ao webhook")

	return nil
}
