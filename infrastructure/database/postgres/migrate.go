package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica as migrações pendentes. Pode ser chamado várias vezes.
// Usa uma conexão própria porque o driver do migrate fecha o *sql.DB ao terminar.
func RunMigrations(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão para migração: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("erro ao carregar migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logrus.WithError(srcErr).Warn("Erro ao fechar a origem das migrações")
		}
		if dbErr != nil {
			logrus.WithError(dbErr).Warn("Erro ao fechar o banco das migrações")
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("Nenhuma migração pendente (banco atualizado)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("erro ao executar migrações: %w", err)
	}

	version, _, _ := m.Version()
	logrus.WithField("version", version).Info("Migrações aplicadas com sucesso")

	return nil
}
