package domain

import "time"

// Session is the authenticated identity carried by a signed browser
// cookie. Name and Level are denormalized from the user row so page
// renders never need a store lookup; the only mutation that can make
// them stale (a level update) re-mints the session in the same flow.
type Session struct {
	UserID    int64
	Name      string
	Level     AcademicLevel
	ExpiresAt time.Time
}
