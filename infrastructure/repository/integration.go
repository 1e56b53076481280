package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-integration-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-integration-api/internal/domain"
	"github.com/vfg2006/ads-integration-api/pkg/crypto"
)

const integrationsTable = "integrations"

var integrationColumns = []string{
	"id", "user_id", "provider", "provider_account_id", "access_token",
	"token_expires_at", "status", "last_sync_at", "created_at", "updated_at",
}

type IntegrationRepository interface {
	GetByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.Integration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Integration, error)
	ListByProviderAndStatus(ctx context.Context, provider domain.Provider, status domain.IntegrationStatus) ([]*domain.Integration, error)
	Upsert(ctx context.Context, integration *domain.Integration) (*domain.Integration, error)
	UpdateToken(ctx context.Context, id, accessToken string, expiresAt *time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.IntegrationStatus) error
	Disconnect(ctx context.Context, id string) error
	TouchLastSync(ctx context.Context, id string, at time.Time) error
}

// integrationRepository cifra o access_token na escrita e decifra na leitura.
// Fora deste pacote o token circula sempre em texto puro.
type integrationRepository struct {
	db     postgres.Queryer
	cipher crypto.TokenCipher
}

func NewIntegrationRepository(db postgres.Queryer, cipher crypto.TokenCipher) IntegrationRepository {
	return &integrationRepository{
		db:     db,
		cipher: cipher,
	}
}

func (r *integrationRepository) GetByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns...).
		From(integrationsTable).
		Where(squirrel.Eq{"user_id": userID, "provider": string(provider)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	integration, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError("buscar integração", err)
	}

	return integration, nil
}

func (r *integrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Integration, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *integrationRepository) ListByProviderAndStatus(ctx context.Context, provider domain.Provider, status domain.IntegrationStatus) ([]*domain.Integration, error) {
	return r.list(ctx, squirrel.Eq{"provider": string(provider), "status": string(status)})
}

func (r *integrationRepository) list(ctx context.Context, where squirrel.Eq) ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns...).
		From(integrationsTable).
		Where(where).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("listar integrações", err)
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}

	return integrations, rows.Err()
}

func (r *integrationRepository) Upsert(ctx context.Context, integration *domain.Integration) (*domain.Integration, error) {
	token, err := r.cipher.Encrypt(integration.AccessToken)
	if err != nil {
		return nil, err
	}

	query, args, err := buildIntegrationUpsert(integration, token)
	if err != nil {
		return nil, err
	}

	saved, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapDBError("salvar integração", err)
	}

	return saved, nil
}

func buildIntegrationUpsert(integration *domain.Integration, encryptedToken string) (string, []any, error) {
	return squirrel.
		Insert(integrationsTable).
		Columns("user_id", "provider", "provider_account_id", "access_token", "token_expires_at", "status", "updated_at").
		Values(
			integration.UserID,
			string(integration.Provider),
			integration.ProviderAccountID,
			encryptedToken,
			integration.TokenExpiresAt,
			string(integration.Status),
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (user_id, provider) DO UPDATE SET
				provider_account_id = EXCLUDED.provider_account_id,
				access_token = EXCLUDED.access_token,
				token_expires_at = EXCLUDED.token_expires_at,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING ` + joinColumns(integrationColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *integrationRepository) UpdateToken(ctx context.Context, id, accessToken string, expiresAt *time.Time) error {
	token, err := r.cipher.Encrypt(accessToken)
	if err != nil {
		return err
	}

	return r.update(ctx, "atualizar token da integração", id, map[string]any{
		"access_token":     token,
		"token_expires_at": expiresAt,
		"status":           string(domain.IntegrationStatusConnected),
	})
}

func (r *integrationRepository) UpdateStatus(ctx context.Context, id string, status domain.IntegrationStatus) error {
	return r.update(ctx, "atualizar status da integração", id, map[string]any{
		"status": string(status),
	})
}

// Disconnect nunca remove a linha, apenas descarta o token
func (r *integrationRepository) Disconnect(ctx context.Context, id string) error {
	return r.update(ctx, "desconectar integração", id, map[string]any{
		"status":           string(domain.IntegrationStatusDisconnected),
		"access_token":     "",
		"token_expires_at": nil,
	})
}

func (r *integrationRepository) TouchLastSync(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, "atualizar last_sync_at", id, map[string]any{
		"last_sync_at": at,
	})
}

func (r *integrationRepository) update(ctx context.Context, op, id string, fields map[string]any) error {
	query, args, err := squirrel.
		Update(integrationsTable).
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(op, err)
	}

	return nil
}

func (r *integrationRepository) scan(row rowScanner) (*domain.Integration, error) {
	var (
		integration domain.Integration
		provider    string
		status      string
		token       string
		expiresAt   sql.NullTime
		lastSyncAt  sql.NullTime
	)

	if err := row.Scan(
		&integration.ID,
		&integration.UserID,
		&provider,
		&integration.ProviderAccountID,
		&token,
		&expiresAt,
		&status,
		&lastSyncAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	); err != nil {
		return nil, err
	}

	plain, err := r.cipher.Decrypt(token)
	if err != nil {
		return nil, err
	}

	integration.AccessToken = plain
	integration.Provider = domain.Provider(provider)
	integration.Status = domain.IntegrationStatus(status)
	integration.TokenExpiresAt = nullTime(expiresAt)
	integration.LastSyncAt = nullTime(lastSyncAt)

	return &integration, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time
	return &v
}
