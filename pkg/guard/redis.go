package guard

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "ads-integration:guard:"

// releaseScript só remove a chave se ela ainda pertencer a quem a adquiriu
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard compartilha as flags entre instâncias. O TTL libera chaves de processos que morreram.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(ctx context.Context, url string, ttl time.Duration) (*RedisGuard, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logrus.WithField("addr", opts.Addr).Info("Redis conectado para controle de operações em andamento")

	return &RedisGuard{client: client, ttl: ttl}, nil
}

func (g *RedisGuard) TryAcquire(ctx context.Context, key string) (Release, error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	ok, err := g.client.SetNX(ctx, keyPrefix+key, token, g.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInProgress
	}

	return func() {
		// O contexto da requisição pode já ter sido cancelado
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, g.client, []string{keyPrefix + key}, token).Err(); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Erro ao liberar flag de operação no Redis")
		}
	}, nil
}

func (g *RedisGuard) IsHeld(ctx context.Context, key string) bool {
	n, err := g.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao consultar flag de operação no Redis")
		return false
	}

	return n > 0
}

func (g *RedisGuard) Close() error {
	return g.client.Close()
}
