package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"petshop/internal/adapters/storage/postgres"
	"petshop/internal/adapters/storage/sqldb"
	"petshop/internal/adapters/storage/sqlite"
	"petshop/internal/console"
	"petshop/internal/domain/animals"
	"petshop/internal/platform/config"
	"petshop/internal/platform/logger"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stdout, os.Exit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "petshop: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	}).With(map[string]any{"session": uuid.NewString()})

	ctx := context.Background()

	// Si la base no abre, el menú corre igual y cada opción informa el error.
	var repo animals.Repository
	db, dialect, err := openDB(cfg)
	if err != nil {
		log.Error("storage unavailable", map[string]any{"err": err, "postgres": cfg.UsePostgres()})
	} else {
		defer db.Close()
		repo = sqldb.NewAnimalsRepo(db, dialect)
	}

	svc := animals.NewService(repo, log)
	if err := svc.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao inicializar o banco de dados: %v\n", err)
	} else {
		fmt.Println("Banco de dados inicializado com sucesso.")
	}

	menu := console.New(svc, console.Options{
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Logger: log,
	})
	if err := menu.Run(ctx); err != nil {
		log.Error("console stopped", map[string]any{"err": err})
	}

	if zl, ok := log.(interface{ Sync() error }); ok {
		_ = zl.Sync()
	}
}

func openDB(cfg config.Config) (*sqlx.DB, sqldb.Dialect, error) {
	if cfg.UsePostgres() {
		db, err := postgres.Open(cfg.DSN)
		return db, postgres.Dialect, err
	}
	db, err := sqlite.Open(cfg.DB)
	return db, sqlite.Dialect, err
}
