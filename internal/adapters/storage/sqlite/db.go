package sqlite

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite" // además registra el driver "sqlite" de database/sql

	"petshop/internal/adapters/storage/sqldb"
)

const DriverName = "sqlite"

const DefaultPath = "petshop.db"

// Schema es el DDL de la tabla Animal para SQLite.
const Schema = `
CREATE TABLE IF NOT EXISTS Animal (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nome TEXT NOT NULL,
	idade INTEGER NOT NULL,
	especie TEXT NOT NULL,
	nome_dono TEXT NOT NULL
)`

// LowerFunc es la función SQL registrada para búsquedas: lower() nativo de
// SQLite solo pliega ASCII ("Ágata" quedaría "Ágata").
const LowerFunc = "petshop_lower"

// Dialect se pasa a sqldb.NewAnimalsRepo.
var Dialect = sqldb.Dialect{Schema: Schema, Lower: LowerFunc}

func init() {
	if err := msqlite.RegisterDeterministicScalarFunction(LowerFunc, 1, unicodeLower); err != nil {
		panic(fmt.Sprintf("register %s: %v", LowerFunc, err))
	}
}

func unicodeLower(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Open abre (o crea) el archivo SQLite. path puede ser ":memory:".
func Open(path string) (*sqlx.DB, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	db, err := sqlx.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	// un solo proceso, un solo usuario: una conexión alcanza y mantiene viva la base :memory:
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}

	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}
