package radar

import (
	"errors"
	"fmt"

	"github.com/paulcager/sectorradar/vector"
)

// Object class labels. Any other byte is accepted and shown as given.
const (
	LabelCar    byte = 'c'
	LabelPerson byte = 'p'
)

var (
	// ErrAtOrigin is returned when an object sits on the receiver, where no
	// bearing can be computed.
	ErrAtOrigin = errors.New("object at origin has no bearing")

	ErrInvalidPosition = errors.New("position is not finite")
)

// TrackedObject is a labelled point in the receiver's frame of reference.
type TrackedObject struct {
	Position vector.Vector3D
	Label    byte
}

// NewTrackedObject places an object in the XY plane.
func NewTrackedObject(x, y float64, label byte) TrackedObject {
	return TrackedObject{Position: vector.New(x, y, 0), Label: label}
}

func (o TrackedObject) String() string {
	return fmt.Sprintf("%c@%v", o.Label, o.Position)
}

// Locate returns the sector an object falls in and its signed angle in
// degrees from the forward axis (positive to the left).
func Locate(pos vector.Vector3D) (Sector, float64, error) {
	if !pos.IsFinite() {
		return 0, 0, fmt.Errorf("%v: %w", pos, ErrInvalidPosition)
	}
	if pos.X == 0 && pos.Y == 0 {
		return 0, 0, ErrAtOrigin
	}
	angle := pos.PlanarAngle()
	return Sector(SectorFor(NumSectors, angle)), angle, nil
}
