package animals

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	rows     []Animal
	nextID   int64
	initRuns int
	failWith error
}

func newTestRepo() *testRepo {
	return &testRepo{nextID: 1}
}

func (r *testRepo) InitSchema(ctx context.Context) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.initRuns++
	return nil
}

func (r *testRepo) Insert(ctx context.Context, a Animal) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	a.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, a)
	return a.ID, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Animal, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]Animal, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *testRepo) FindByName(ctx context.Context, query string) ([]Animal, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]Animal, 0)
	for _, a := range r.rows {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(query)) {
			out = append(out, a)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_AssignsIDAndTrims(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	a, err := svc.Register(context.Background(), RegisterInput{
		Name:      "  Rex ",
		Age:       4,
		Species:   "Cachorro",
		OwnerName: "Ana ",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("expected id 1, got %d", a.ID)
	}
	if a.Name != "Rex" || a.OwnerName != "Ana" {
		t.Fatalf("expected trimmed fields, got %#v", a)
	}
	if a.Sound() != "Au Au!" {
		t.Fatalf("expected dog sound, got %q", a.Sound())
	}
}

func TestService_Register_RejectsNegativeAge(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Rex", Age: -1, Species: "Cachorro"})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestService_Register_UnmappedSpeciesIsPersisted(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	a, err := svc.Register(context.Background(), RegisterInput{Name: "Loro", Age: 2, Species: "Papagaio", OwnerName: "Bia"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if a.Kind() != SpeciesOther || a.Sound() != UnknownSound {
		t.Fatalf("expected placeholder sound, got %q", a.Sound())
	}
	if len(repo.rows) != 1 || repo.rows[0].Species != "Papagaio" {
		t.Fatalf("expected species persisted as typed, got %#v", repo.rows)
	}
}

func TestService_NilRepo_ReportsUnavailable(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	if svc.Available() {
		t.Fatalf("expected unavailable")
	}
	if err := svc.Init(ctx); err != ErrStorageUnavailable {
		t.Fatalf("Init: expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Name: "Rex", Age: 1}); err != ErrStorageUnavailable {
		t.Fatalf("Register: expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.List(ctx); err != ErrStorageUnavailable {
		t.Fatalf("List: expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.Search(ctx, "x"); err != ErrStorageUnavailable {
		t.Fatalf("Search: expected ErrStorageUnavailable, got %v", err)
	}
}

func TestService_RepoErrors_AreReturned(t *testing.T) {
	boom := errors.New("disk I/O error")
	repo := newTestRepo()
	repo.failWith = boom
	svc := NewService(repo, nil)
	ctx := context.Background()

	if err := svc.Init(ctx); !errors.Is(err, boom) {
		t.Fatalf("Init: expected boom, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Name: "Rex", Age: 1}); !errors.Is(err, boom) {
		t.Fatalf("Register: expected boom, got %v", err)
	}
	if _, err := svc.List(ctx); !errors.Is(err, boom) {
		t.Fatalf("List: expected boom, got %v", err)
	}
	if _, err := svc.Search(ctx, ""); !errors.Is(err, boom) {
		t.Fatalf("Search: expected boom, got %v", err)
	}
}

func TestService_Search_EmptyQueryReturnsAll(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	for _, n := range []string{"Rex", "Mia", "Thor"} {
		if _, err := svc.Register(ctx, RegisterInput{Name: n, Age: 1, Species: "Gato", OwnerName: "Ana"}); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	all, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}

	got, err := svc.Search(ctx, "RE")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Rex" {
		t.Fatalf("expected only Rex, got %#v", got)
	}
}
