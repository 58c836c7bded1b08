package animals

import "testing"

func TestSoundOf_CaseInsensitive(t *testing.T) {
	cases := []struct {
		species string
		want    string
	}{
		{"Cachorro", "Au Au!"},
		{"cachorro", "Au Au!"},
		{"CACHORRO", "Au Au!"},
		{" Cachorro ", "Au Au!"},
		{"Gato", "Miau!"},
		{"gAtO", "Miau!"},
		{"Papagaio", UnknownSound},
		{"", UnknownSound},
		{"Cachorros", UnknownSound},
	}

	for _, tc := range cases {
		a := New("x", 1, tc.species, "y")
		if got := a.Sound(); got != tc.want {
			t.Fatalf("species %q: expected %q, got %q", tc.species, tc.want, got)
		}
	}
}

func TestParseSpecies(t *testing.T) {
	if ParseSpecies("cachorro") != SpeciesDog {
		t.Fatalf("expected dog")
	}
	if ParseSpecies("GATO") != SpeciesCat {
		t.Fatalf("expected cat")
	}
	if ParseSpecies("Hamster") != SpeciesOther {
		t.Fatalf("expected other")
	}
	if SpeciesOther.Supported() || !SpeciesDog.Supported() || !SpeciesCat.Supported() {
		t.Fatalf("unexpected Supported() values")
	}
}

func TestAnimal_StringAndOwner(t *testing.T) {
	a := New("Rex", 4, "Cachorro", "Ana")

	want := "Nome: Rex, Idade: 4 anos, Espécie: Cachorro, Dono: Ana"
	if a.String() != want {
		t.Fatalf("expected %q, got %q", want, a.String())
	}

	o := a.Owner()
	if o.Name != "Ana" || o.Phone != "N/A" {
		t.Fatalf("unexpected owner %#v", o)
	}
	if o.String() != "Dono [nome=Ana, telefone=N/A]" {
		t.Fatalf("unexpected owner string %q", o.String())
	}
}
