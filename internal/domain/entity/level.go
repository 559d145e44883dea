package entity

// StudentLevel is the vocational certificate level a student is enrolled in.
// The values are the Thai curriculum labels used verbatim across the system.
type StudentLevel string

const (
	// LevelVocational is the vocational certificate level (ปวช.), years 1-3.
	LevelVocational StudentLevel = "ปวช."
	// LevelHighVocational is the high vocational certificate level (ปวส.), years 1-2.
	LevelHighVocational StudentLevel = "ปวส."
)

// IsValid checks if the StudentLevel is a valid value.
func (l StudentLevel) IsValid() bool {
	switch l {
	case LevelVocational, LevelHighVocational:
		return true
	default:
		return false
	}
}

// MaxYear returns the highest study year allowed at this level.
func (l StudentLevel) MaxYear() int {
	switch l {
	case LevelVocational:
		return 3
	case LevelHighVocational:
		return 2
	default:
		return 0
	}
}

// AllowsYear cross-checks a study year against the level.
func (l StudentLevel) AllowsYear(year int) bool {
	return year >= 1 && year <= l.MaxYear()
}
