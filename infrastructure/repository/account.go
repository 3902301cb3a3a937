package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-status-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

const (
	adAccountsTable = "ad_accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	ListActiveAccounts() ([]*domain.AdAccount, error)
	SaveOrUpdate(account *domain.AdAccount) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.customer_id, a.status").
		From(adAccountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.AdAccount{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&account.ID, &account.Name, &account.CustomerID, &account.Status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

// ListActiveAccounts retorna as contas habilitadas para monitoramento, na
// ordem de cadastro.
func (r *accountRepository) ListActiveAccounts() ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.customer_id, a.status").
		From(adAccountsTable).
		Where(squirrel.Eq{"a.status": domain.AdAccountStatusActive}).
		OrderBy("a.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas ativas: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		if err := rows.Scan(&account.ID, &account.Name, &account.CustomerID, &account.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer contas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) SaveOrUpdate(account *domain.AdAccount) error {
	now := time.Now()

	query, args, err := squirrel.
		Insert("ad_accounts").
		Columns("id", "name", "customer_id", "status", "created_at", "updated_at").
		Values(account.ID, account.Name, account.CustomerID, account.Status, now, now).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				customer_id = EXCLUDED.customer_id,
				status = EXCLUDED.status,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar conta: %w", err)
	}

	return nil
}
