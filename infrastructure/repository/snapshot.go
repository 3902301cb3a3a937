package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-status-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

const (
	snapshotsTable = "status_snapshots s"
)

// SnapshotRepository é o adaptador do armazenamento de snapshots. Load com
// resultado vazio sinaliza a primeira execução; Replace sobrescreve todo o
// conteúdo anterior da conta/tipo, sem guardar histórico — o log de status é
// o único registro durável do que aconteceu.
type SnapshotRepository interface {
	Load(accountID string, entityType domain.EntityType) (*domain.Snapshot, error)
	Replace(ctx context.Context, accountID string, entityType domain.EntityType, snapshot *domain.Snapshot, observedAt time.Time) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// Load lê o snapshot persistido na ordem de gravação.
func (r *snapshotRepository) Load(accountID string, entityType domain.EntityType) (*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select("s.entity_id, s.campaign_name, s.ad_group_name, s.kind, s.status, s.secondary_status, s.observed_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"s.account_id": accountID, "s.entity_type": entityType}).
		OrderBy("s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := domain.NewSnapshot()
	for rows.Next() {
		record := &domain.EntitySnapshot{}
		var secondary sql.NullString
		if err := rows.Scan(
			&record.ID,
			&record.CampaignName,
			&record.AdGroupName,
			&record.Kind,
			&record.Status,
			&secondary,
			&record.ObservedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de snapshot: %w", err)
		}
		if secondary.Valid {
			record.SecondaryStatus = domain.EntityStatus(secondary.String)
		}
		snapshot.Add(record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer snapshot: %w", err)
	}

	return snapshot, nil
}

// Replace apaga as linhas anteriores e grava o estado atual em uma única
// transação, carimbando cada linha com o timestamp da execução.
func (r *snapshotRepository) Replace(
	ctx context.Context,
	accountID string,
	entityType domain.EntityType,
	snapshot *domain.Snapshot,
	observedAt time.Time,
) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("status_snapshots").
		Where(squirrel.Eq{"account_id": accountID, "entity_type": entityType}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar snapshot anterior: %w", err)
		}

		if snapshot.IsEmpty() {
			return nil
		}

		builder := squirrel.
			Insert("status_snapshots").
			Columns(
				"account_id", "entity_type", "entity_id",
				"campaign_name", "ad_group_name", "kind",
				"status", "secondary_status", "observed_at",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range snapshot.Records() {
			builder = builder.Values(
				accountID,
				entityType,
				record.ID,
				record.CampaignName,
				record.AdGroupName,
				record.Kind,
				record.Status,
				nullableStatus(record.SecondaryStatus),
				observedAt,
			)
		}

		insertSQL, insertArgs, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao gravar snapshot: %w", err)
		}

		return nil
	})
}

func nullableStatus(status domain.EntityStatus) interface{} {
	if status == "" {
		return nil
	}
	return string(status)
}
