package main

import (
	"math/rand"

	"github.com/paulcager/sectorradar/radar"
)

// Generator produces random objects around the receiver.
type Generator struct {
	rnd *rand.Rand

	MinObjects int     // inclusive
	MaxObjects int     // exclusive
	Extent     float64 // coordinates fall in [-Extent, Extent)
	Labels     []byte
}

func NewGenerator(seed int64, minObjects, maxObjects int, extent float64, labels []byte) *Generator {
	return &Generator{
		rnd:        rand.New(rand.NewSource(seed)),
		MinObjects: minObjects,
		MaxObjects: maxObjects,
		Extent:     extent,
		Labels:     labels,
	}
}

func (g *Generator) Generate() []radar.TrackedObject {
	n := g.MinObjects
	if g.MaxObjects > g.MinObjects {
		n += g.rnd.Intn(g.MaxObjects - g.MinObjects)
	}

	objs := make([]radar.TrackedObject, 0, n)
	for i := 0; i < n; i++ {
		x := g.coordinate()
		y := g.coordinate()
		label := g.Labels[g.rnd.Intn(len(g.Labels))]
		objs = append(objs, radar.NewTrackedObject(x, y, label))
	}
	return objs
}

func (g *Generator) coordinate() float64 {
	return (g.rnd.Float64()*2 - 1) * g.Extent
}
