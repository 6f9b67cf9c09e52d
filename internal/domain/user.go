package domain

import (
	"context"
	"fmt"
	"time"
)

// User represents a registered learner.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Level        AcademicLevel
	CreatedAt    time.Time
}

// AcademicLevel tailors explanation verbosity and tone.
type AcademicLevel string

const (
	LevelSchool  AcademicLevel = "school"
	LevelCollege AcademicLevel = "college"
	LevelDegree  AcademicLevel = "degree"
)

// Levels lists every valid academic level, in ascending order of depth.
func Levels() []AcademicLevel {
	return []AcademicLevel{LevelSchool, LevelCollege, LevelDegree}
}

// Valid reports whether l is one of the enumerated levels.
func (l AcademicLevel) Valid() bool {
	switch l {
	case LevelSchool, LevelCollege, LevelDegree:
		return true
	}
	return false
}

// ParseAcademicLevel converts a form value into an AcademicLevel,
// rejecting anything outside the enumeration.
func ParseAcademicLevel(s string) (AcademicLevel, error) {
	l := AcademicLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: unknown academic level %q", ErrInvalidInput, s)
	}
	return l, nil
}

// LevelOrDefault resolves s to a valid level, falling back to school.
// Used where a level may predate the current enumeration (e.g. a stale
// session token) and a usable default beats an error.
func LevelOrDefault(s string) AcademicLevel {
	if l := AcademicLevel(s); l.Valid() {
		return l
	}
	return LevelSchool
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateLevel(ctx context.Context, id int64, level AcademicLevel) error
}
