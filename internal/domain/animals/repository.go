package animals

import "context"

type Repository interface {
	InitSchema(ctx context.Context) error
	Insert(ctx context.Context, a Animal) (int64, error)
	ListAll(ctx context.Context) ([]Animal, error)
	FindByName(ctx context.Context, query string) ([]Animal, error)
}
