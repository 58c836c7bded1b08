package animals

import (
	"context"
	"errors"
	"strings"

	"petshop/internal/platform/logger"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("camada de dados não inicializada")
)

type Service struct {
	repo Repository
	log  logger.Logger
}

// NewService acepta repo nil: cada operación devuelve ErrStorageUnavailable
// en lugar de romper el proceso.
func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "animals"}),
	}
}

func (s *Service) Available() bool { return s.repo != nil }

// Init crea la tabla si no existe. Idempotente.
func (s *Service) Init(ctx context.Context) error {
	if s.repo == nil {
		s.log.Error("storage not initialized", map[string]any{"op": "init_schema"})
		return ErrStorageUnavailable
	}
	if err := s.repo.InitSchema(ctx); err != nil {
		s.log.Error("init schema failed", map[string]any{"op": "init_schema", "err": err})
		return err
	}
	s.log.Info("schema ready", nil)
	return nil
}

type RegisterInput struct {
	Name      string
	Age       int
	Species   string
	OwnerName string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Animal, error) {
	if in.Age < 0 {
		return Animal{}, ErrInvalidInput
	}
	if s.repo == nil {
		s.log.Error("storage not initialized", map[string]any{"op": "insert"})
		return Animal{}, ErrStorageUnavailable
	}

	a := New(
		strings.TrimSpace(in.Name),
		in.Age,
		strings.TrimSpace(in.Species),
		strings.TrimSpace(in.OwnerName),
	)

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		s.log.Error("insert failed", map[string]any{"op": "insert", "name": a.Name, "err": err})
		return Animal{}, err
	}
	a.ID = id

	s.log.Debug("animal registered", map[string]any{"id": id, "species": string(a.Kind())})
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	if s.repo == nil {
		s.log.Error("storage not initialized", map[string]any{"op": "list"})
		return nil, ErrStorageUnavailable
	}
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("list failed", map[string]any{"op": "list", "err": err})
		return nil, err
	}
	return out, nil
}

// Search busca por substring del nombre (case-insensitive). Query vacía = todos.
func (s *Service) Search(ctx context.Context, query string) ([]Animal, error) {
	if s.repo == nil {
		s.log.Error("storage not initialized", map[string]any{"op": "search"})
		return nil, ErrStorageUnavailable
	}
	out, err := s.repo.FindByName(ctx, query)
	if err != nil {
		s.log.Error("search failed", map[string]any{"op": "search", "query": query, "err": err})
		return nil, err
	}
	return out, nil
}
