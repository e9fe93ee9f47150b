package acls

// DifficultyLevel names one tier of the difficulty table.
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

// DifficultySettings is one entry of the process-wide, read-only difficulty
// table. Initial time is deliberately the same across tiers; only score
// multipliers and labels vary. TimeMultiplier is still applied generically
// so a future tier with a different value needs no code change.
type DifficultySettings struct {
	Level           DifficultyLevel `json:"level"`
	Label           string          `json:"label"`
	Description     string          `json:"description"`
	Color           string          `json:"color"`
	InitialTime     int             `json:"initialTime"`
	TimeMultiplier  float64         `json:"timeMultiplier"`
	ScoreMultiplier float64         `json:"scoreMultiplier"`
}

// Difficulties returns the shipped difficulty table. Callers receive a
// fresh map; the engine takes it as an initialization argument rather than
// reading a package global, so tests can substitute alternate tables.
func Difficulties() map[DifficultyLevel]DifficultySettings {
	return map[DifficultyLevel]DifficultySettings{
		Beginner: {
			Level:           Beginner,
			Label:           "Beginner",
			Description:     "Standard time pressure with detailed feedback, ideal for learning ACLS protocols",
			Color:           "green",
			InitialTime:     60,
			TimeMultiplier:  1.0,
			ScoreMultiplier: 1.0,
		},
		Intermediate: {
			Level:           Intermediate,
			Label:           "Intermediate",
			Description:     "Standard time pressure, balanced challenge for practicing ACLS protocols",
			Color:           "blue",
			InitialTime:     60,
			TimeMultiplier:  1.0,
			ScoreMultiplier: 1.5,
		},
		Advanced: {
			Level:           Advanced,
			Label:           "Advanced",
			Description:     "Standard time pressure with complex decision-making, simulates real emergency conditions",
			Color:           "red",
			InitialTime:     60,
			TimeMultiplier:  1.0,
			ScoreMultiplier: 2.0,
		},
	}
}
