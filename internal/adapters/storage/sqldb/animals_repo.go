// Package sqldb implementa animals.Repository sobre database/sql (vía sqlx).
// Las sentencias usan "?" y se re-escriben con Rebind según el driver,
// así el mismo repo sirve para SQLite y Postgres.
package sqldb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"petshop/internal/domain/animals"
)

var ErrNoDB = errors.New("sqldb: nil database handle")

const (
	insertAnimalSQL = `INSERT INTO Animal (nome, idade, especie, nome_dono) VALUES (?, ?, ?, ?) RETURNING id`

	selectAnimalsSQL = `SELECT id, nome, idade, especie, nome_dono FROM Animal`
)

// Dialect es lo que cambia entre backends: el DDL y la función SQL que pasa
// un texto a minúsculas igual que strings.ToLower.
type Dialect struct {
	Schema string
	Lower  string
}

type AnimalsRepo struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewAnimalsRepo recibe el handle abierto y el dialecto del backend (sqlite.Dialect, postgres.Dialect).
func NewAnimalsRepo(db *sqlx.DB, dialect Dialect) *AnimalsRepo {
	if dialect.Lower == "" {
		dialect.Lower = "lower"
	}
	return &AnimalsRepo{db: db, dialect: dialect}
}

func (r *AnimalsRepo) InitSchema(ctx context.Context) error {
	if r.db == nil {
		return ErrNoDB
	}
	if _, err := r.db.ExecContext(ctx, r.dialect.Schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (r *AnimalsRepo) Insert(ctx context.Context, a animals.Animal) (int64, error) {
	if r.db == nil {
		return 0, ErrNoDB
	}

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertAnimalSQL),
		a.Name,
		a.Age,
		a.Species,
		a.OwnerName,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert animal: %w", err)
	}
	return id, nil
}

func (r *AnimalsRepo) ListAll(ctx context.Context) ([]animals.Animal, error) {
	if r.db == nil {
		return nil, ErrNoDB
	}

	out := make([]animals.Animal, 0)
	if err := r.db.SelectContext(ctx, &out, selectAnimalsSQL+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return out, nil
}

// FindByName: substring case-insensitive; query vacía devuelve todo.
// Columna y patrón se pasan a minúsculas con la misma regla (Dialect.Lower en SQL,
// strings.ToLower en Go).
func (r *AnimalsRepo) FindByName(ctx context.Context, query string) ([]animals.Animal, error) {
	if r.db == nil {
		return nil, ErrNoDB
	}

	q := r.db.Rebind(selectAnimalsSQL + ` WHERE ` + r.dialect.Lower + `(nome) LIKE ? ESCAPE '\' ORDER BY id`)

	out := make([]animals.Animal, 0)
	if err := r.db.SelectContext(ctx, &out, q, likePattern(query)); err != nil {
		return nil, fmt.Errorf("find animals by name: %w", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern arma "%<query>%" escapando comodines para que la query sea literal.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}
