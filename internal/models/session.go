package models

import "time"

// Status is the client-visible round lifecycle state (spec section 4.6).
type Status int

const (
	StatusInitial Status = iota
	StatusPreStart
	StatusPlaying
	StatusScoring
	StatusScored
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "INITIAL"
	case StatusPreStart:
		return "PRE_START"
	case StatusPlaying:
		return "PLAYING"
	case StatusScoring:
		return "SCORING"
	case StatusScored:
		return "SCORED"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders Status as its name rather than its ordinal.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Session is one row of the sessions table (spec section 3). RoundScored
// is the tri-state round_scored column: nil means unset (no scoring job
// has run or completed for the current round), false means in progress,
// true means committed.
type Session struct {
	ID             int64
	Created        time.Time
	DiceConfig     string
	Dictionary     *string
	RoundMinutes   int
	UseMildScoring bool
	RoundNo        int
	RoundStart     *time.Time
	RoundScored    *bool
}

// RoundEnd returns the round's scheduled end time, or the zero time if the
// round hasn't started.
func (s *Session) RoundEnd() time.Time {
	if s.RoundStart == nil {
		return time.Time{}
	}
	return s.RoundStart.Add(time.Duration(s.RoundMinutes) * time.Minute)
}
