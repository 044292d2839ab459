package models

// Player is one row of the players table, owned by a session.
type Player struct {
	ID        int64
	SessionID int64
	Name      string
}

// Submission is one row of the submissions table: a single player's word
// list for a single round. The (PlayerID, RoundNo) pair is unique (U1).
type Submission struct {
	ID       int64
	PlayerID int64
	RoundNo  int
}

// Word is one row of the words table: a single submitted word plus its
// scoring outputs once the round has been scored. (SubmissionID, Word) is
// unique (U2).
type Word struct {
	ID              int64
	SubmissionID    int64
	Word            string
	Score           *int
	Duplicate       *bool
	DictionaryValid *bool
	LongestBonus    *bool
	PathArray       *string // JSON-encoded []boggle.Cell, or null
}
