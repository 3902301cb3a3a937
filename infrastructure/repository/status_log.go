package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-status-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

const (
	statusChangesTable = "status_changes sc"
)

// StatusLogRepository é o log durável de transições: append-only, nunca
// reescreve nem reordena linhas já gravadas.
type StatusLogRepository interface {
	Append(records []*domain.ChangeRecord) error
	ListByAccount(accountID string, entityType domain.EntityType, limit int) ([]*domain.ChangeRecord, error)
}

type statusLogRepository struct {
	conn *postgres.Connection
}

func NewStatusLogRepository(conn *postgres.Connection) StatusLogRepository {
	return &statusLogRepository{
		conn: conn,
	}
}

// Append grava uma linha por registro, na ordem produzida pelo detector.
// Lista vazia é no-op.
func (r *statusLogRepository) Append(records []*domain.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("status_changes").
		Columns(
			"logged_at", "account_name", "account_id",
			"campaign_name", "ad_group_name", "entity_id", "entity_type", "kind",
			"previous_status", "new_status",
			"previous_secondary_status", "new_secondary_status",
			"change_type",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			record.Timestamp,
			record.AccountName,
			record.AccountID,
			record.CampaignName,
			record.AdGroupName,
			record.EntityID,
			record.EntityType,
			record.Kind,
			record.PreviousStatus,
			record.NewStatus,
			record.PreviousSecondaryStatus,
			record.NewSecondaryStatus,
			record.ChangeType,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar registros de mudança: %w", err)
	}

	return nil
}

// ListByAccount retorna os registros mais recentes de uma conta, do mais novo
// para o mais antigo. entityType vazio lista todos os tipos.
func (r *statusLogRepository) ListByAccount(
	accountID string,
	entityType domain.EntityType,
	limit int,
) ([]*domain.ChangeRecord, error) {
	builder := squirrel.
		Select(
			"sc.logged_at, sc.account_name, sc.account_id",
			"sc.campaign_name, sc.ad_group_name, sc.entity_id, sc.entity_type, sc.kind",
			"sc.previous_status, sc.new_status",
			"sc.previous_secondary_status, sc.new_secondary_status",
			"sc.change_type",
		).
		From(statusChangesTable).
		Where(squirrel.Eq{"sc.account_id": accountID}).
		OrderBy("sc.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if entityType != "" {
		builder = builder.Where(squirrel.Eq{"sc.entity_type": entityType})
	}

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar registros de mudança: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.ChangeRecord, 0)
	for rows.Next() {
		record := &domain.ChangeRecord{}
		if err := rows.Scan(
			&record.Timestamp,
			&record.AccountName,
			&record.AccountID,
			&record.CampaignName,
			&record.AdGroupName,
			&record.EntityID,
			&record.EntityType,
			&record.Kind,
			&record.PreviousStatus,
			&record.NewStatus,
			&record.PreviousSecondaryStatus,
			&record.NewSecondaryStatus,
			&record.ChangeType,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de mudança: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer registros de mudança: %w", err)
	}

	return records, nil
}
