package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-integration-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-integration-api/internal/domain"
)

const adAccountsTable = "fb_ad_accounts"

var adAccountColumns = []string{
	"id", "account_id", "name", "account_status", "is_active", "amount_spent",
	"currency", "timezone_name", "business_name", "business_id", "integration_id", "updated_at",
}

type AdAccountRepository interface {
	SaveFacebookAdAccounts(ctx context.Context, accounts []*domain.AdAccount) ([]*domain.AdAccount, error)
	ListByIntegration(ctx context.Context, integrationID string) ([]*domain.AdAccount, error)
	SetActive(ctx context.Context, integrationID string, accountIDs []string, active bool) ([]*domain.AdAccount, error)
}

type adAccountRepository struct {
	db postgres.Queryer
}

func NewAdAccountRepository(db postgres.Queryer) AdAccountRepository {
	return &adAccountRepository{
		db: db,
	}
}

// SaveFacebookAdAccounts faz upsert pelo account_id e devolve as linhas persistidas.
// O is_active não é tocado: a seleção é sempre uma ação explícita do usuário.
func (r *adAccountRepository) SaveFacebookAdAccounts(ctx context.Context, accounts []*domain.AdAccount) ([]*domain.AdAccount, error) {
	if len(accounts) == 0 {
		return []*domain.AdAccount{}, nil
	}

	accounts = dedupeBy(accounts, func(a *domain.AdAccount) string { return a.AccountID })

	query, args, err := buildAdAccountsUpsert(accounts)
	if err != nil {
		return nil, err
	}

	return r.query(ctx, "salvar contas de anúncio", query, args)
}

func buildAdAccountsUpsert(accounts []*domain.AdAccount) (string, []any, error) {
	builder := squirrel.
		Insert(adAccountsTable).
		Columns("account_id", "name", "account_status", "amount_spent", "currency",
			"timezone_name", "business_name", "business_id", "integration_id", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		updatedAt := account.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now().UTC()
		}

		builder = builder.Values(
			account.AccountID,
			account.Name,
			account.AccountStatus,
			account.AmountSpent,
			account.Currency,
			account.TimezoneName,
			account.BusinessName,
			account.BusinessID,
			account.IntegrationID,
			updatedAt,
		)
	}

	return builder.Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				name = EXCLUDED.name,
				account_status = EXCLUDED.account_status,
				amount_spent = EXCLUDED.amount_spent,
				currency = EXCLUDED.currency,
				timezone_name = EXCLUDED.timezone_name,
				business_name = EXCLUDED.business_name,
				business_id = EXCLUDED.business_id,
				integration_id = EXCLUDED.integration_id,
				updated_at = EXCLUDED.updated_at
			RETURNING ` + joinColumns(adAccountColumns)).
		ToSql()
}

func (r *adAccountRepository) ListByIntegration(ctx context.Context, integrationID string) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(adAccountColumns...).
		From(adAccountsTable).
		Where(squirrel.Eq{"integration_id": integrationID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.query(ctx, "listar contas de anúncio", query, args)
}

// SetActive altera o is_active das contas (pelo account_id externo) da integração
// e devolve as linhas afetadas
func (r *adAccountRepository) SetActive(ctx context.Context, integrationID string, accountIDs []string, active bool) ([]*domain.AdAccount, error) {
	if len(accountIDs) == 0 {
		return []*domain.AdAccount{}, nil
	}

	query, args, err := buildSetActive(integrationID, accountIDs, active)
	if err != nil {
		return nil, err
	}

	return r.query(ctx, "atualizar seleção de contas", query, args)
}

func buildSetActive(integrationID string, accountIDs []string, active bool) (string, []any, error) {
	return squirrel.
		Update(adAccountsTable).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"integration_id": integrationID, "account_id": accountIDs}).
		Suffix("RETURNING " + joinColumns(adAccountColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *adAccountRepository) query(ctx context.Context, op, query string, args []any) ([]*domain.AdAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(op, err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		var account domain.AdAccount
		if err := rows.Scan(
			&account.ID,
			&account.AccountID,
			&account.Name,
			&account.AccountStatus,
			&account.IsActive,
			&account.AmountSpent,
			&account.Currency,
			&account.TimezoneName,
			&account.BusinessName,
			&account.BusinessID,
			&account.IntegrationID,
			&account.UpdatedAt,
		); err != nil {
			return nil, wrapDBError(op, err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(op, err)
	}

	return accounts, nil
}
