// Package console implementa el menú de texto del petshop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"petshop/internal/domain/animals"
	"petshop/internal/platform/logger"
)

const (
	choiceExit     = 0
	choiceRegister = 1
	choiceList     = 2
	choiceSearch   = 3
)

const menuText = `=====================================
       Sistema Petshop - Menu
=====================================
1. Cadastrar Novo Animal
2. Consultar Animais Cadastrados (Listar Todos)
3. Consultar Animal por Nome
0. Sair
=====================================
`

// DefaultMaxLineBytes limita cada línea leída; lo que exceda se descarta
// y la línea cuenta como entrada inválida.
const DefaultMaxLineBytes = 1 << 20

var errLineTooLong = errors.New("linha de entrada muito longa")

type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer // errores de storage; default os.Stderr

	MaxLineBytes int // default DefaultMaxLineBytes

	Logger logger.Logger
}

type Menu struct {
	svc     *animals.Service
	in      *bufio.Reader
	maxLine int
	out     io.Writer
	err     io.Writer
	log     logger.Logger
}

func New(svc *animals.Service, opts Options) *Menu {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Menu{
		svc:     svc,
		in:      bufio.NewReader(in),
		maxLine: maxLine,
		out:     out,
		err:     errOut,
		log:     log.With(map[string]any{"component": "console"}),
	}
}

// Run muestra el menú hasta que el usuario elige 0 o se cierra la entrada.
// Los errores de storage se informan y el loop sigue; solo devuelve error
// si falla la lectura de la entrada.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		m.prompt("Escolha uma opção: ")

		line, err := m.readLine()
		if err != nil && !errors.Is(err, errLineTooLong) {
			return endOfInput(err)
		}

		choice := -1
		if err == nil {
			if n, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil {
				choice = n
			}
		}
		m.log.Debug("menu choice", map[string]any{"choice": choice})

		switch choice {
		case choiceExit:
			fmt.Fprintln(m.out, "Saindo do sistema. Obrigado!")
			return nil

		case choiceRegister:
			if err := m.register(ctx); err != nil {
				return endOfInput(err)
			}

		case choiceList:
			m.listAll(ctx)

		case choiceSearch:
			m.prompt("Digite o nome (ou parte do nome) do animal para buscar: ")
			query, err := m.readLine()
			if errors.Is(err, errLineTooLong) {
				m.tooLong()
				continue
			}
			if err != nil {
				return endOfInput(err)
			}
			m.search(ctx, query)

		default:
			fmt.Fprintln(m.out, "Opção inválida. Tente novamente.")
		}
	}
}

func (m *Menu) register(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Cadastro de Novo Animal ---")

	m.prompt("Nome do Animal: ")
	name, err := m.readLine()
	if errors.Is(err, errLineTooLong) {
		m.tooLong()
		return nil
	}
	if err != nil {
		return err
	}

	age, err := m.readAge()
	if err != nil {
		return err
	}

	m.prompt("Espécie do Animal (Cachorro/Gato): ")
	species, err := m.readLine()
	if errors.Is(err, errLineTooLong) {
		m.tooLong()
		return nil
	}
	if err != nil {
		return err
	}

	m.prompt("Nome do Dono: ")
	owner, err := m.readLine()
	if errors.Is(err, errLineTooLong) {
		m.tooLong()
		return nil
	}
	if err != nil {
		return err
	}

	if !animals.ParseSpecies(species).Supported() {
		fmt.Fprintf(m.out, "Espécie não suportada para demonstração de Herança/Polimorfismo. Cadastrando como %s.\n", strings.TrimSpace(species))
	}

	a, err := m.svc.Register(ctx, animals.RegisterInput{
		Name:      name,
		Age:       age,
		Species:   species,
		OwnerName: owner,
	})
	if err != nil {
		fmt.Fprintf(m.err, "Erro ao cadastrar animal: %v\n", err)
		return nil
	}

	fmt.Fprintln(m.out, "\nAnimal cadastrado com sucesso!")
	fmt.Fprintf(m.out, "Demonstração de Polimorfismo: Som emitido: %s\n", a.Sound())
	return nil
}

// readAge repite la pregunta hasta recibir un entero >= 0.
func (m *Menu) readAge() (int, error) {
	for {
		m.prompt("Idade do Animal (anos): ")
		line, err := m.readLine()
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(m.out, "Entrada inválida. Por favor, digite um número.")
			continue
		}
		if err != nil {
			return 0, err
		}

		age, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			fmt.Fprintln(m.out, "Entrada inválida. Por favor, digite um número.")
		case age < 0:
			fmt.Fprintln(m.out, "Idade não pode ser negativa.")
		default:
			return age, nil
		}
	}
}

func (m *Menu) listAll(ctx context.Context) {
	items, err := m.svc.List(ctx)
	if err != nil {
		fmt.Fprintf(m.err, "Erro ao listar animais: %v\n", err)
		return
	}

	fmt.Fprintln(m.out, "\n--- Animais Cadastrados ---")
	if len(items) == 0 {
		fmt.Fprintln(m.out, "Nenhum animal cadastrado.")
	}
	m.printAnimals(items)
	fmt.Fprintln(m.out, "---------------------------")
	fmt.Fprintln(m.out)
}

func (m *Menu) search(ctx context.Context, query string) {
	items, err := m.svc.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(m.err, "Erro ao buscar animal: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "\n--- Resultado da Busca por '%s' ---\n", query)
	if len(items) == 0 {
		fmt.Fprintf(m.out, "Nenhum animal encontrado com o nome: %s\n", query)
	}
	m.printAnimals(items)
	fmt.Fprintln(m.out, "-----------------------------------------")
	fmt.Fprintln(m.out)
}

func (m *Menu) printAnimals(items []animals.Animal) {
	for _, a := range items {
		fmt.Fprintf(m.out, "%s, Som: %s\n", a, a.Sound())
	}
}

func (m *Menu) prompt(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) tooLong() {
	fmt.Fprintf(m.out, "Entrada muito longa (máximo %d bytes). Tente novamente.\n", m.maxLine)
}

// readLine lee una línea completa sin el fin de línea. Una línea de más de
// maxLine bytes se consume entera y devuelve errLineTooLong.
func (m *Menu) readLine() (string, error) {
	var (
		buf     []byte
		read    bool
		tooLong bool
	)
	for {
		chunk, isPrefix, err := m.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		read = true

		if !tooLong {
			if len(buf)+len(chunk) > m.maxLine {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		m.log.Warn("input line too long", map[string]any{"max_bytes": m.maxLine})
		return "", errLineTooLong
	}
	return strings.TrimRight(string(buf), "\r"), nil
}

// endOfInput: entrada cerrada = salida normal.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
