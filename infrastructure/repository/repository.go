package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

//go:generate mockgen -source=integration.go -destination=mocks/mock_integration.go -package=mocks
//go:generate mockgen -source=ad_account.go -destination=mocks/mock_ad_account.go -package=mocks
//go:generate mockgen -source=campaign.go -destination=mocks/mock_campaign.go -package=mocks

// wrapDBError anexa o código do Postgres quando disponível
func wrapDBError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: erro no banco de dados: %w (code: %s)", op, pqErr, pqErr.Code)
	}

	return fmt.Errorf("%s: %w", op, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// dedupeBy mantém uma linha por chave (a última vence). O Postgres rejeita um
// ON CONFLICT DO UPDATE que toque a mesma linha duas vezes no mesmo comando.
func dedupeBy[T any](items []*T, key func(*T) string) []*T {
	index := make(map[string]int, len(items))
	out := make([]*T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i] = item
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}

	return out
}
