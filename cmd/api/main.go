package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-integration-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook"
	"github.com/vfg2006/ads-integration-api/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ads-integration-api/infrastructure/repository"
	"github.com/vfg2006/ads-integration-api/internal/api"
	"github.com/vfg2006/ads-integration-api/internal/api/handler"
	"github.com/vfg2006/ads-integration-api/internal/config"
	"github.com/vfg2006/ads-integration-api/internal/scheduler"
	"github.com/vfg2006/ads-integration-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-integration-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-integration-api/internal/usecases/integrations"
	"github.com/vfg2006/ads-integration-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-integration-api/pkg/crypto"
	"github.com/vfg2006/ads-integration-api/pkg/guard"
	"github.com/vfg2006/ads-integration-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o formato e o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.Migrate {
		if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)

	cipher, err := crypto.NewSecretBox(cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("SECRET_KEY inválida")
	}

	operationGuard, closeGuard := newGuard(ctx, cfg.Guard)

	integrationRepo := repository.NewIntegrationRepository(pgConn, cipher)
	adAccountRepo := repository.NewAdAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	fbClient := fbclient.NewClient(cfg)
	facebookIntegrator := facebook.New(cfg, fbClient)

	authGate := connecting.NewAuthGate(cfg, fbClient)
	if !authGate.Initialized() {
		logrus.Warn("FACEBOOK_APP_ID/FACEBOOK_APP_SECRET não configurados, conexão com o Facebook indisponível")
	}

	connectService := connecting.NewService(authGate, connecting.NewTokenExchanger(fbClient), integrationRepo, operationGuard)
	syncService := syncing.NewService(cfg, facebookIntegrator, integrationRepo, adAccountRepo, campaignRepo, operationGuard)

	dispatcher := integrations.NewDispatcher(integrations.NewFacebookHandler(connectService, syncService))

	integrationSyncService := scheduler.NewIntegrationSyncService(integrationRepo, connectService, syncService, cfg)
	if err := integrationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de integrações")
	} else {
		logrus.Info("Agendador de sincronização de integrações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		api.Services{
			Authenticator: authenticator,
			Connector:     connectService,
			Syncer:        syncService,
			Dispatcher:    dispatcher,
			CronJobs:      handler.CronJobServices{IntegrationSyncService: integrationSyncService},
			DB:            pgConn,
		},
		closeGuard,
		pgConn.Close,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newGuard usa o Redis quando REDIS_URL está definido, permitindo várias instâncias da API
func newGuard(ctx context.Context, cfg config.Guard) (guard.Guard, func() error) {
	if cfg.RedisURL == "" {
		logrus.Info("Controle de operações em andamento em memória")
		return guard.NewMemoryGuard(), func() error { return nil }
	}

	redisGuard, err := guard.NewRedisGuard(ctx, cfg.RedisURL, cfg.TTL)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.Info("Controle de operações em andamento no Redis")
	return redisGuard, redisGuard.Close
}
