package session

import "time"

// ScoreStore keeps each pilot's best score. RecordScore must keep the
// maximum of the stored and offered values.
type ScoreStore interface {
	HighScore(identity string) (int, error)
	RecordScore(identity string, score int) error
}

// Run describes one finished game.
type Run struct {
	ID        string
	Pilot     string
	Map       string
	Ship      string
	Score     int
	Ticks     uint64
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the run lasted in wall-clock time.
func (r Run) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// RunRecorder is implemented by stores that also keep a run history.
type RunRecorder interface {
	SaveRun(r Run) error
}
