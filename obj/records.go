package obj

import "time"

// Record is the best completed run of a level.
type Record struct {
	BestTime      time.Duration
	GemsCollected int
}

// BeatenBy reports whether a run that finished in finish is faster than r.
func (r Record) BeatenBy(finish time.Duration) bool {
	return finish < r.BestTime
}

// RecordLoader reads the stored best run of a level. ok is false when the
// level has never been completed.
type RecordLoader interface {
	LoadRecord(level string) (rec Record, ok bool, err error)
}
