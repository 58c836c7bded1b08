package postgres

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"petshop/internal/adapters/storage/sqldb"
)

const DriverName = "pgx"

// Schema es el DDL de la tabla Animal para Postgres (sin comillas: queda como "animal").
const Schema = `
CREATE TABLE IF NOT EXISTS Animal (
	id BIGSERIAL PRIMARY KEY,
	nome TEXT NOT NULL,
	idade INTEGER NOT NULL,
	especie TEXT NOT NULL,
	nome_dono TEXT NOT NULL
)`

// Dialect se pasa a sqldb.NewAnimalsRepo; lower() de Postgres ya es Unicode.
var Dialect = sqldb.Dialect{Schema: Schema, Lower: "lower"}

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
