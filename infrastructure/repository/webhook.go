package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-status-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

const (
	webhookEndpointsTable = "webhook_endpoints w"
)

// WebhookRepository resolve o endpoint de alerta por conta. A ausência de
// mapeamento não é erro: retorna nil e a notificação fica desabilitada para
// a conta.
type WebhookRepository interface {
	GetByAccountID(accountID string) (*domain.WebhookEndpoint, error)
}

type webhookRepository struct {
	conn *postgres.Connection
}

func NewWebhookRepository(conn *postgres.Connection) WebhookRepository {
	return &webhookRepository{
		conn: conn,
	}
}

// GetByAccountID busca por igualdade exata do identificador da conta; havendo
// mais de uma linha, a primeira cadastrada vence.
func (r *webhookRepository) GetByAccountID(accountID string) (*domain.WebhookEndpoint, error) {
	query, args, err := squirrel.
		Select("w.account_id, w.url, w.created_at").
		From(webhookEndpointsTable).
		Where(squirrel.Eq{"w.account_id": accountID}).
		OrderBy("w.created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	endpoint := &domain.WebhookEndpoint{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&endpoint.AccountID, &endpoint.URL, &endpoint.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear endpoint de webhook: %w", err)
	}

	return endpoint, nil
}
