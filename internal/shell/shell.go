// Package shell implements the interactive text menu over an activity store.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=shell_test

// Store is the part of the activity repository the menu drives.
type Store interface {
	Create(a types.Activity) (int64, error)
	List() ([]types.Record, error)
	Update(id int64, patch types.ActivityPatch) (int64, error)
	Delete(id int64) (int64, error)
}

// Menu choices.
const (
	choiceRegister = 1
	choiceList     = 2
	choiceUpdate   = 3
	choiceDelete   = 4
	choiceExit     = 5
)

const menuText = `SEGUIMIENTO DE EJERCICIO
Elija la opción correspondiente
---------------------------------------------

        1.- Registrar nueva actividad
        2.- Ver todas las actividades registradas
        3.- Actualizar una actividad previa
        4.- Eliminar una actividad
        5.- SALIR
`

// Shell reads menu choices from in and writes prompts and results to out.
// The caller owns the store and closes it after Run returns.
type Shell struct {
	store       Store
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithClearScreen controls whether Run clears the console before the first
// menu. Clearing only happens when out is a terminal.
func WithClearScreen(enabled bool) Option {
	return func(s *Shell) { s.clearScreen = enabled }
}

// New returns a Shell over store.
func New(store Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:       store,
		in:          bufio.NewReader(in),
		out:         out,
		clearScreen: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the operator picks the exit option or input ends.
// Storage failures are reported to out and the loop continues; only input
// errors other than EOF are returned.
func (s *Shell) Run() error {
	if s.clearScreen {
		clearConsole(s.out)
	}

	for {
		fmt.Fprint(s.out, menuText)
		choice, err := s.promptInt("Ingrese una opción: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case choiceRegister:
			err = s.register()
		case choiceList:
			s.list()
		case choiceUpdate:
			err = s.update()
		case choiceDelete:
			err = s.delete()
		case choiceExit:
			fmt.Fprintln(s.out, "CERRANDO EL PROGRAMA............")
			return nil
		default:
			fmt.Fprintln(s.out, "Opción inválida, intenta nuevamente.")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) register() error {
	name, err := s.prompt("Nombre de la actividad: ")
	if err != nil {
		return err
	}
	duration, err := s.promptInt("Duración (minutos): ")
	if err != nil {
		return err
	}
	calories, err := s.promptFloat("Calorías quemadas: ")
	if err != nil {
		return err
	}

	act := types.NewCardioExercise(name, duration, calories)
	if _, err := s.store.Create(act); err != nil {
		fmt.Fprintf(s.out, "Error al insertar actividad: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "Actividad '%s' registrada con éxito.\n", act.Name)
	return nil
}

func (s *Shell) list() {
	records, err := s.store.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error al leer actividades: %v\n", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No hay actividades registradas.")
		return
	}
	for _, r := range records {
		fmt.Fprintln(s.out, r.String())
	}
}

func (s *Shell) update() error {
	id, err := s.promptInt("ID de la actividad a actualizar: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deja en blanco los campos que no quieras modificar.")

	var patch types.ActivityPatch
	name, err := s.prompt("Nuevo nombre (opcional): ")
	if err != nil {
		return err
	}
	if name != "" {
		patch = patch.WithName(name)
	}
	if patch.DurationMinutes, err = s.promptOptionalInt("Nueva duración (opcional): "); err != nil {
		return err
	}
	if patch.CaloriesBurned, err = s.promptOptionalFloat("Nuevas calorías quemadas (opcional): "); err != nil {
		return err
	}

	n, err := s.store.Update(int64(id), patch)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error al actualizar actividad: %v\n", err)
	case n == 0:
		fmt.Fprintln(s.out, "Ninguna actividad fue modificada.")
	default:
		fmt.Fprintln(s.out, "Actividad actualizada con éxito.")
	}
	return nil
}

func (s *Shell) delete() error {
	id, err := s.promptInt("ID de la actividad a eliminar: ")
	if err != nil {
		return err
	}

	n, err := s.store.Delete(int64(id))
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error al eliminar actividad: %v\n", err)
	case n == 0:
		fmt.Fprintf(s.out, "No existe una actividad con ID %d.\n", id)
	default:
		fmt.Fprintln(s.out, "Actividad eliminada con éxito.")
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
