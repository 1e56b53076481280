package guard

import (
	"context"
	"errors"
	"sync"
)

// ErrInProgress indica que a mesma operação já está em andamento para a chave
var ErrInProgress = errors.New("operação já em andamento")

type Release func()

// Guard impede a reentrada de uma operação enquanto ela estiver em andamento.
// É o equivalente às flags isLoading* do dashboard.
type Guard interface {
	TryAcquire(ctx context.Context, key string) (Release, error)
	IsHeld(ctx context.Context, key string) bool
}

func Key(userID, operation string) string {
	return operation + ":" + userID
}

type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

func (g *MemoryGuard) TryAcquire(_ context.Context, key string) (Release, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return nil, ErrInProgress
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}

func (g *MemoryGuard) IsHeld(_ context.Context, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.held[key]
	return ok
}
