package animals

import (
	"fmt"
	"strings"
)

// Species es el tipo de animal derivado del texto libre de "especie".
// @Enum Cachorro, Gato, outro
type Species string

const (
	SpeciesDog   Species = "Cachorro"
	SpeciesCat   Species = "Gato"
	SpeciesOther Species = "outro"
)

const UnknownSound = "Som Desconhecido"

var sounds = map[Species]string{
	SpeciesDog: "Au Au!",
	SpeciesCat: "Miau!",
}

// ParseSpecies mapea el texto ingresado (case-insensitive) a una especie conocida.
// Cualquier otro valor cae en SpeciesOther; no se rechaza.
func ParseSpecies(s string) Species {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(SpeciesDog)):
		return SpeciesDog
	case strings.EqualFold(s, string(SpeciesCat)):
		return SpeciesCat
	default:
		return SpeciesOther
	}
}

// SoundOf devuelve el sonido asociado a la especie.
func SoundOf(sp Species) string {
	if s, ok := sounds[sp]; ok {
		return s
	}
	return UnknownSound
}

// Supported indica si la especie tiene un sonido propio.
func (sp Species) Supported() bool {
	_, ok := sounds[sp]
	return ok
}

// Animal representa una mascota registrada (una fila de la tabla Animal).
type Animal struct {
	ID int64 `db:"id"`

	Name      string `db:"nome"`
	Age       int    `db:"idade"`
	Species   string `db:"especie"` // texto libre, tal como se ingresó
	OwnerName string `db:"nome_dono"`
}

func New(name string, age int, species, ownerName string) Animal {
	return Animal{
		Name:      name,
		Age:       age,
		Species:   species,
		OwnerName: ownerName,
	}
}

func (a Animal) Kind() Species { return ParseSpecies(a.Species) }

func (a Animal) Sound() string { return SoundOf(a.Kind()) }

// Owner arma el dueño a partir del nombre desnormalizado. El teléfono no se persiste.
func (a Animal) Owner() Owner {
	return Owner{Name: a.OwnerName, Phone: "N/A"}
}

func (a Animal) String() string {
	return fmt.Sprintf("Nome: %s, Idade: %d anos, Espécie: %s, Dono: %s", a.Name, a.Age, a.Species, a.OwnerName)
}
