// Package config lee la configuración de línea de comandos y entorno.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// Config es la gramática kong del binario. Todas las opciones tienen default,
// así que correr sin flags ni env reproduce el comportamiento base (petshop.db local).
type Config struct {
	DB  string `default:"petshop.db" env:"PETSHOP_DB" help:"SQLite database file (or :memory:)." name:"db"`
	DSN string `default:""           env:"DB_DSN"     help:"PostgreSQL DSN; when set it replaces --db." name:"dsn"`

	Log struct {
		Level  string `default:"warn" env:"LOG_LEVEL"  enum:"debug,info,warn,error" help:"Log level: ${enum}."`
		Format string `default:"text" env:"LOG_FORMAT" enum:"text,json"             help:"Log format: ${enum}."`
	} `embed:"" prefix:"log-"`

	AppName string `default:"petshop" env:"APP_NAME" help:"Application name added to log entries."`
}

// UsePostgres indica si se eligió el backend Postgres.
func (c Config) UsePostgres() bool {
	return strings.TrimSpace(c.DSN) != ""
}

// Parse interpreta args (sin el nombre del programa). stdout recibe el --help.
func Parse(args []string, stdout io.Writer, exit func(int)) (Config, error) {
	var cfg Config

	parser, err := kong.New(&cfg,
		kong.Name("petshop"),
		kong.Description("Sistema Petshop: cadastro e consulta de animais."),
		kong.Writers(stdout, stdout),
		kong.Exit(exit),
	)
	if err != nil {
		return Config{}, fmt.Errorf("build cli parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
