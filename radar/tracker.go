package radar

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/kr/pretty"
)

type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateClassified
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateClassified:
		return "classified"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is the outcome of one classification pass.
type Result struct {
	Grid Grid
	// Counts holds the number of objects per sector and label.
	Counts [NumSectors]map[byte]int
	// AtOrigin counts objects sitting on the receiver; they are shown in the
	// center cell.
	AtOrigin int
	Objects  int
}

// MixedCells returns the number of cells holding more than one class.
func (r Result) MixedCells() int {
	n := 0
	for _, row := range r.Grid {
		for _, c := range row {
			if c == Mixed {
				n++
			}
		}
	}
	return n
}

// Tracker holds the objects of one observation cycle and classifies them
// into sectors. It is not safe for concurrent use.
type Tracker struct {
	logger  log.Logger
	objects []TrackedObject
	state   State
}

func NewTracker(logger log.Logger) *Tracker {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Tracker{logger: logger}
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) Len() int {
	return len(t.objects)
}

// Objects returns a copy of the tracked objects.
func (t *Tracker) Objects() []TrackedObject {
	return append([]TrackedObject(nil), t.objects...)
}

// Populate adds objects to the current cycle. If any object has a
// non-finite position nothing is added.
func (t *Tracker) Populate(objs ...TrackedObject) error {
	for i, o := range objs {
		if !o.Position.IsFinite() {
			return fmt.Errorf("object %d (%c): %w", i, o.Label, ErrInvalidPosition)
		}
	}
	if len(objs) == 0 {
		return nil
	}
	t.objects = append(t.objects, objs...)
	t.state = StatePopulated
	level.Debug(t.logger).Log("msg", "objects added", "added", len(objs), "tracked", len(t.objects), "objects", pretty.Sprint(objs))
	return nil
}

// Clear discards all tracked objects.
func (t *Tracker) Clear() {
	t.objects = t.objects[:0]
	t.state = StateEmpty
}

// Classify buckets every tracked object into its sector. The tracked objects
// are kept; call Clear to start a new cycle.
func (t *Tracker) Classify() Result {
	res := Result{Grid: NewGrid(), Objects: len(t.objects)}
	for i := range res.Counts {
		res.Counts[i] = make(map[byte]int)
	}

	for _, o := range t.objects {
		s, angle, err := Locate(o.Position)
		if errors.Is(err, ErrAtOrigin) {
			level.Warn(t.logger).Log("msg", "object at origin", "label", string(o.Label))
			res.AtOrigin++
			res.Grid.Mark(1, 1, o.Label)
			continue
		}
		if err != nil {
			level.Error(t.logger).Log("msg", "cannot locate object", "object", o, "err", err)
			continue
		}
		level.Debug(t.logger).Log("object", o, "dot", o.Position.Dot(axisForward), "angle", angle, "sector", s)
		res.Counts[s][o.Label]++
		row, col := s.Cell()
		res.Grid.Mark(row, col, o.Label)
	}

	if len(t.objects) > 0 {
		t.state = StateClassified
	}
	return res
}
