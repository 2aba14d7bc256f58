package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulcager/osgridref"
	"github.com/paulcager/sectorradar/radar"
)

// Scenario is a fixed set of objects read from a JSON file, e.g.
//
//	{
//	  "receiver": {"lat": 51.5, "lon": -0.12, "heading": 90},
//	  "objects": [
//	    {"x": 0.5, "y": -0.2, "label": "c"},
//	    {"lat": 51.501, "lon": -0.12, "label": "p"}
//	  ]
//	}
//
// Objects are given either in the receiver's local frame (x ahead, y to the
// left) or by position, in which case the receiver position is required.
type Scenario struct {
	Receiver *Receiver `json:"receiver,omitempty"`
	Objects  []struct {
		X     *float64 `json:"x,omitempty"`
		Y     *float64 `json:"y,omitempty"`
		Lat   *float64 `json:"lat,omitempty"`
		Lon   *float64 `json:"lon,omitempty"`
		Label string   `json:"label"`
	} `json:"objects"`
}

type Receiver struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	// Heading is the bearing of the forward axis in degrees clockwise from
	// north.
	Heading float64 `json:"heading"`
}

var errBadObject = errors.New("invalid scenario object")

func loadScenario(path string) ([]radar.TrackedObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readScenario(f)
}

func readScenario(r io.Reader) ([]radar.TrackedObject, error) {
	var sc Scenario
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}

	objs := make([]radar.TrackedObject, 0, len(sc.Objects))
	for i, o := range sc.Objects {
		if len(o.Label) != 1 {
			return nil, fmt.Errorf("object %d: label %q must be one character: %w", i, o.Label, errBadObject)
		}
		label := o.Label[0]

		switch {
		case o.X != nil && o.Y != nil:
			objs = append(objs, radar.NewTrackedObject(*o.X, *o.Y, label))
		case o.Lat != nil && o.Lon != nil:
			if sc.Receiver == nil {
				return nil, fmt.Errorf("object %d: lat/lon given without a receiver position: %w", i, errBadObject)
			}
			x, y := sc.Receiver.local(osgridref.LatLon{Lat: *o.Lat, Lon: *o.Lon})
			objs = append(objs, radar.NewTrackedObject(x, y, label))
		default:
			return nil, fmt.Errorf("object %d: needs x and y, or lat and lon: %w", i, errBadObject)
		}
	}
	return objs, nil
}

// local converts a position to the receiver's frame, in metres.
func (rc Receiver) local(there osgridref.LatLon) (x, y float64) {
	here := osgridref.LatLon{Lat: rc.Lat, Lon: rc.Lon}
	d := here.DistanceTo(there)
	if d == 0 {
		return 0, 0
	}
	// Bearings run clockwise, local angles counter-clockwise.
	rel := (rc.Heading - here.InitialBearingTo(there)) * math.Pi / 180
	return d * math.Cos(rel), d * math.Sin(rel)
}
