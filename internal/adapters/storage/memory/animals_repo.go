package memory

import (
	"context"
	"strings"
	"sync"

	"petshop/internal/domain/animals"
)

type animalRepo struct {
	mu     sync.RWMutex
	rows   []animals.Animal
	nextID int64
}

// NewAnimalRepo devuelve un repo en memoria (tests / dev sin archivo).
func NewAnimalRepo() animals.Repository {
	return &animalRepo{nextID: 1}
}

func (r *animalRepo) InitSchema(ctx context.Context) error {
	return nil
}

func (r *animalRepo) Insert(ctx context.Context, a animals.Animal) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, a)
	return a.ID, nil
}

func (r *animalRepo) ListAll(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *animalRepo) FindByName(ctx context.Context, query string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]animals.Animal, 0)
	for _, a := range r.rows {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out, nil
}
