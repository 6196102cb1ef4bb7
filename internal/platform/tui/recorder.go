package tui

import (
	"errors"

	"github.com/vovakirdan/tui-shooter/internal/scorelog"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Recorder persists finished runs to the score log and the high score table.
// Either destination may be nil.
type Recorder struct {
	Store *storage.Store
	Log   *scorelog.Log
}

// Record writes one finished run. The log gets every run; the database
// only keeps non-zero scores. Failures of both are joined.
func (r *Recorder) Record(gameID string, score int, reason string) error {
	if r == nil {
		return nil
	}

	var errs []error
	if r.Log != nil {
		if err := r.Log.Append(score); err != nil {
			errs = append(errs, err)
		}
	}
	if r.Store != nil && score > 0 {
		if _, err := r.Store.SaveScore(gameID, score, reason); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// store returns the database, if any.
func (r *Recorder) store() *storage.Store {
	if r == nil {
		return nil
	}
	return r.Store
}
