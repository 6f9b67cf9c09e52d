package domain

// Explanation is the text bundle produced for a topic at a given
// academic level.
type Explanation struct {
	Topic    string
	Level    AcademicLevel
	Body     string
	Summary  string
	Examples []string
}
