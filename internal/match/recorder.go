package match

// Recorder saves a result at most once per match. The tui model calls
// Record on every tick after game over; only the first call reaches
// storage. A nil saver degrades to not recording at all.
type Recorder struct {
	saver Saver
	saved bool
}

// NewRecorder creates a recorder backed by the given saver (may be nil).
func NewRecorder(saver Saver) *Recorder {
	return &Recorder{saver: saver}
}

// Reset arms the recorder for a new match.
func (r *Recorder) Reset() {
	r.saved = false
}

// Record persists the result unless one was already recorded for this
// match or no saver is configured.
func (r *Recorder) Record(res Result) error {
	if r.saved || r.saver == nil {
		return nil
	}
	r.saved = true
	return r.saver.SaveMatch(res)
}

// Saved reports whether this match's result has been recorded.
func (r *Recorder) Saved() bool {
	return r.saved
}
