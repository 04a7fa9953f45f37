package main

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL DEFAULT 2,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_aliases (
		source       VARCHAR(255) PRIMARY KEY,
		display_name VARCHAR(255) NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func createSchema(tx *sql.Tx) error {
	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	logrus.WithField("tables", len(schema)).Info("migration: tabelas verificadas")
	return nil
}

// seedAdmin cria o administrador inicial; um email já cadastrado não é alterado
func seedAdmin(tx *sql.Tx, auth config.Auth) error {
	email := strings.ToLower(strings.TrimSpace(auth.AdminEmail))
	if email == "" || auth.AdminPassword == "" {
		logrus.Warn("migration: ADMIN_EMAIL/ADMIN_PASSWORD vazios, administrador não criado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result, err := tx.Exec(
		`INSERT INTO users (name, email, password_hash, active, role_id)
		 VALUES ($1, $2, $3, TRUE, $4)
		 ON CONFLICT (email) DO NOTHING`,
		"Administrador", email, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		return err
	}

	if inserted, _ := result.RowsAffected(); inserted > 0 {
		logrus.WithField("email", email).Info("migration: administrador criado")
	} else {
		logrus.WithField("email", email).Info("migration: administrador já existe")
	}
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("migration: iniciando")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("migration: erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("migration: erro ao conectar ao banco")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}
		return seedAdmin(tx, cfg.Auth)
	})
	if err != nil {
		logrus.WithError(err).Fatal("migration: transação revertida")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("migration: concluída")
}
