package types

// ActivityPatch carries the fields to rewrite on an existing activity.
// A nil field is absent. Present fields holding their zero value ("" or 0)
// are treated as absent too, so a patch can never clear a field.
type ActivityPatch struct {
	Name            *string
	DurationMinutes *int
	CaloriesBurned  *float64
}

// WithName sets the name field.
func (p ActivityPatch) WithName(name string) ActivityPatch {
	p.Name = &name
	return p
}

// WithDuration sets the duration field.
func (p ActivityPatch) WithDuration(minutes int) ActivityPatch {
	p.DurationMinutes = &minutes
	return p
}

// WithCalories sets the calories field.
func (p ActivityPatch) WithCalories(kcal float64) ActivityPatch {
	p.CaloriesBurned = &kcal
	return p
}

// HasName reports whether the name will be rewritten.
func (p ActivityPatch) HasName() bool { return p.Name != nil && *p.Name != "" }

// HasDuration reports whether the duration will be rewritten.
func (p ActivityPatch) HasDuration() bool { return p.DurationMinutes != nil && *p.DurationMinutes != 0 }

// HasCalories reports whether the calories will be rewritten.
func (p ActivityPatch) HasCalories() bool { return p.CaloriesBurned != nil && *p.CaloriesBurned != 0 }

// IsEmpty reports whether applying the patch would change nothing.
func (p ActivityPatch) IsEmpty() bool {
	return !p.HasName() && !p.HasDuration() && !p.HasCalories()
}
