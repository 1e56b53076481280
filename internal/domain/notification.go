package domain

import (
	"context"
	"sync"
)

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification é a mensagem exibida ao usuário (toast) ao final de cada operação
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// Notifications acumula as notificações emitidas durante uma requisição
type Notifications struct {
	mu    sync.Mutex
	items []Notification
}

type notificationsKey struct{}

func WithNotifications(ctx context.Context) (context.Context, *Notifications) {
	n := &Notifications{}
	return context.WithValue(ctx, notificationsKey{}, n), n
}

// Notify registra a notificação no coletor do contexto. Sem coletor, é descartada.
func Notify(ctx context.Context, level NotificationLevel, message string) {
	n, ok := ctx.Value(notificationsKey{}).(*Notifications)
	if !ok || n == nil {
		return
	}

	n.mu.Lock()
	n.items = append(n.items, Notification{Level: level, Message: message})
	n.mu.Unlock()
}

func NotifySuccess(ctx context.Context, message string) {
	Notify(ctx, NotificationSuccess, message)
}

func NotifyError(ctx context.Context, message string) {
	Notify(ctx, NotificationError, message)
}

func (n *Notifications) List() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Count devolve quantas notificações do nível informado foram emitidas
func (n *Notifications) Count(level NotificationLevel) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := 0
	for _, item := range n.items {
		if item.Level == level {
			count++
		}
	}
	return count
}
