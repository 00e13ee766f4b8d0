package models

import (
	"fmt"
	"strings"
	"unicode"
)

// ScoreRecord holds the win/loss tally of one nickname
type ScoreRecord struct {
	Nickname string
	Wins     int
	Losses   int
}

// GamesPlayed returns the number of completed rounds
func (r *ScoreRecord) GamesPlayed() int {
	return r.Wins + r.Losses
}

// WinRate returns the win percentage as 0-100
func (r *ScoreRecord) WinRate() float64 {
	if r.GamesPlayed() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.GamesPlayed()) * 100
}

// ValidateNickname trims the nickname and rejects values the score store cannot hold
func ValidateNickname(nickname string) (string, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return "", fmt.Errorf("%w: nickname cannot be empty", ErrInvalidNickname)
	}
	if strings.Contains(nickname, ",") {
		return "", fmt.Errorf("%w: nickname cannot contain commas", ErrInvalidNickname)
	}
	if strings.IndexFunc(nickname, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: nickname cannot contain control characters", ErrInvalidNickname)
	}
	return nickname, nil
}

// ScoreBoard is the ordered set of score records backing the score store.
// Records keep the order in which they were first seen.
type ScoreBoard struct {
	order   []string
	records map[string]*ScoreRecord
}

// NewScoreBoard creates an empty scoreboard
func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		records: make(map[string]*ScoreRecord),
	}
}

// Put stores a record, overwriting the stats of an existing nickname in place.
// The nickname is validated and trimmed so the stored board serializes and parses back unchanged.
func (b *ScoreBoard) Put(record ScoreRecord) error {
	nickname, err := ValidateNickname(record.Nickname)
	if err != nil {
		return err
	}
	if record.Wins < 0 || record.Losses < 0 {
		return fmt.Errorf("%w: negative stats for %s", ErrInvalidScore, nickname)
	}
	record.Nickname = nickname

	if existing, ok := b.records[nickname]; ok {
		existing.Wins = record.Wins
		existing.Losses = record.Losses
		return nil
	}
	b.order = append(b.order, nickname)
	b.records[nickname] = &record
	return nil
}

// Get returns a copy of the record for nickname
func (b *ScoreBoard) Get(nickname string) (*ScoreRecord, bool) {
	r, ok := b.records[nickname]
	if !ok {
		return nil, false
	}
	out := *r
	return &out, true
}

// Register adds a new nickname with no wins and no losses
func (b *ScoreBoard) Register(nickname string) (*ScoreRecord, error) {
	nickname, err := ValidateNickname(nickname)
	if err != nil {
		return nil, err
	}
	if _, ok := b.records[nickname]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNickname, nickname)
	}
	if err := b.Put(ScoreRecord{Nickname: nickname}); err != nil {
		return nil, err
	}
	r, _ := b.Get(nickname)
	return r, nil
}

// RecordWin adds one win, creating the record if the nickname is unknown
func (b *ScoreBoard) RecordWin(nickname string) (*ScoreRecord, error) {
	r, err := b.ensure(nickname)
	if err != nil {
		return nil, err
	}
	r.Wins++
	out := *r
	return &out, nil
}

// RecordLoss adds one loss, creating the record if the nickname is unknown
func (b *ScoreBoard) RecordLoss(nickname string) (*ScoreRecord, error) {
	r, err := b.ensure(nickname)
	if err != nil {
		return nil, err
	}
	r.Losses++
	out := *r
	return &out, nil
}

func (b *ScoreBoard) ensure(nickname string) (*ScoreRecord, error) {
	nickname, err := ValidateNickname(nickname)
	if err != nil {
		return nil, err
	}
	if _, ok := b.records[nickname]; !ok {
		if err := b.Put(ScoreRecord{Nickname: nickname}); err != nil {
			return nil, err
		}
	}
	return b.records[nickname], nil
}

// Records returns copies of all records in insertion order
func (b *ScoreBoard) Records() []*ScoreRecord {
	out := make([]*ScoreRecord, 0, len(b.order))
	for _, nickname := range b.order {
		r := *b.records[nickname]
		out = append(out, &r)
	}
	return out
}

// Len returns the number of records
func (b *ScoreBoard) Len() int {
	return len(b.order)
}

// Clone returns a deep copy of the scoreboard
func (b *ScoreBoard) Clone() *ScoreBoard {
	out := NewScoreBoard()
	for _, r := range b.Records() {
		_ = out.Put(*r) // records already passed validation
	}
	return out
}
