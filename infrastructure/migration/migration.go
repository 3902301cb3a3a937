package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/database/postgres"
)

// Os esquemas são criados de forma idempotente na subida do serviço. As
// colunas de status_changes e status_snapshots espelham o registro de
// mudança e o snapshot do domínio, uma coluna por campo.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS status_snapshots (
		id               BIGSERIAL PRIMARY KEY,
		account_id       TEXT NOT NULL REFERENCES ad_accounts (id),
		entity_type      TEXT NOT NULL,
		entity_id        TEXT NOT NULL,
		campaign_name    TEXT NOT NULL DEFAULT '',
		ad_group_name    TEXT NOT NULL DEFAULT '',
		kind             TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL,
		secondary_status TEXT,
		observed_at      TIMESTAMPTZ NOT NULL,
		UNIQUE (account_id, entity_type, entity_id)
	)`,
	`CREATE TABLE IF NOT EXISTS status_changes (
		id                        BIGSERIAL PRIMARY KEY,
		logged_at                 TIMESTAMPTZ NOT NULL,
		account_name              TEXT NOT NULL,
		account_id                TEXT NOT NULL,
		campaign_name             TEXT NOT NULL DEFAULT '',
		ad_group_name             TEXT NOT NULL DEFAULT '',
		entity_id                 TEXT NOT NULL,
		entity_type               TEXT NOT NULL,
		kind                      TEXT NOT NULL DEFAULT '',
		previous_status           TEXT NOT NULL,
		new_status                TEXT NOT NULL,
		previous_secondary_status TEXT NOT NULL,
		new_secondary_status      TEXT NOT NULL,
		change_type               TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_status_changes_account
		ON status_changes (account_id, entity_type, id DESC)`,
	`CREATE TABLE IF NOT EXISTS webhook_endpoints (
		account_id TEXT NOT NULL REFERENCES ad_accounts (id),
		url        TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Run cria as tabelas do serviço se ainda não existirem.
func Run(ctx context.Context, conn *postgres.Connection) error {
	for _, statement := range statements {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao executar migração: %w", err)
		}
	}

	logrus.Info("Migração do esquema concluída")
	return nil
}
