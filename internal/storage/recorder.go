package storage

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tilemerge/internal/controller"
	"github.com/vovakirdan/tilemerge/internal/engine"
)

// ScoreSaver is the part of Store the recorder needs.
type ScoreSaver interface {
	SaveScore(entry ScoreEntry) (int64, error)
}

// GameState reports the state of the game being recorded.
type GameState interface {
	Snapshot() engine.Snapshot
}

// Recorder saves the final score of every game that ends.
// Subscribe it to a controller; each restart begins a new session.
type Recorder struct {
	saver     ScoreSaver
	game      GameState
	logger    *log.Logger
	sessionID string
	saved     bool
	lastID    int64
}

// Ensure Recorder implements controller.Observer
var _ controller.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder. A nil logger discards output.
func NewRecorder(saver ScoreSaver, game GameState, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		saver:     saver,
		game:      game,
		logger:    logger,
		sessionID: uuid.NewString(),
	}
}

// SessionID returns the id of the game currently being recorded.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// LastID returns the row id of the most recent saved score, or 0.
func (r *Recorder) LastID() int64 {
	return r.lastID
}

// BoardChanged starts a new session on restart.
func (r *Recorder) BoardChanged(result engine.MoveResult) {
	if result.Restarted {
		r.sessionID = uuid.NewString()
		r.saved = false
	}
}

// ScoreChanged is a no-op; only the final score is stored.
func (r *Recorder) ScoreChanged(int) {}

// GameOver stores the final score once per session.
func (r *Recorder) GameOver() {
	if r.saved {
		return
	}
	r.saved = true

	snap := r.game.Snapshot()
	entry := ScoreEntry{
		Variant:   Variant(snap.Size),
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
		SessionID: r.sessionID,
	}

	id, err := r.saver.SaveScore(entry)
	if err != nil {
		r.logger.Error("save score", "session", r.sessionID, "err", err)
		return
	}
	r.lastID = id
	r.logger.Info("score saved", "variant", entry.Variant, "score", entry.Score, "session", r.sessionID)
}
