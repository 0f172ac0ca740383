package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant of an activity. The variant only changes the labels
// used for display and the tipo column written at insert time.
type Kind uint8

const (
	KindActivity Kind = iota
	KindCardio
)

// Kind labels as stored in the tipo column.
const (
	LabelActivity = "Activity"
	LabelCardio   = "EjercicioCardio"
)

// kindLabels is the fixed mapping from variant to stored label.
var kindLabels = map[Kind]string{
	KindActivity: LabelActivity,
	KindCardio:   LabelCardio,
}

// kindAliases maps accepted user input (case-insensitive) to a Kind.
var kindAliases = map[string]Kind{
	"activity":        KindActivity,
	"cardio":          KindCardio,
	"ejerciciocardio": KindCardio,
}

// Label returns the storage label for the kind.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) String() string { return k.Label() }

// ParseKind returns the Kind for a stored label or a short alias
// ("activity", "cardio"). Returns ErrInvalidKind otherwise.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// Activity is an activity entry that has not been persisted yet.
type Activity struct {
	Kind            Kind
	Name            string
	DurationMinutes int
	CaloriesBurned  float64
}

// NewActivity returns a generic activity.
func NewActivity(name string, durationMinutes int, caloriesBurned float64) Activity {
	return Activity{
		Kind:            KindActivity,
		Name:            name,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
	}
}

// NewCardioExercise returns an activity of the cardio variant.
func NewCardioExercise(name string, durationMinutes int, caloriesBurned float64) Activity {
	a := NewActivity(name, durationMinutes, caloriesBurned)
	a.Kind = KindCardio
	return a
}

// Describe formats the activity for display.
func (a Activity) Describe() string {
	prefix := "Actividad"
	if a.Kind == KindCardio {
		prefix = "Ejercicio"
	}
	return fmt.Sprintf("%s: %s, Duración: %d minutos, Calorías quemadas: %s kcal.",
		prefix, a.Name, a.DurationMinutes, FormatCalories(a.CaloriesBurned))
}

func (a Activity) String() string { return a.Describe() }

// Record is an activity row as read back from storage. Kind holds the raw
// label written at creation.
type Record struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	DurationMinutes int     `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
}

func (r Record) String() string {
	return fmt.Sprintf("ID: %d, Nombre: %s, Tipo: %s, Duración: %d minutos, Calorías: %s kcal",
		r.ID, r.Name, r.Kind, r.DurationMinutes, FormatCalories(r.CaloriesBurned))
}

// FormatCalories renders a calorie value with at least one decimal place,
// so 250 prints as "250.0" and 250.25 as "250.25".
func FormatCalories(c float64) string {
	s := strconv.FormatFloat(c, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
