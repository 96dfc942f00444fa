// Package simulation holds the vorton data the viewer renders.
//
// Stepping the physics is not done here; a Snapshot is a fixed, ordered set of
// vortons that other code can read every frame.
package simulation

import (
	"math"
)

// Vorton is a vortex particle. Positions are kept in float64 as the physics works in
// double precision; renderers narrow them as needed.
type Vorton struct {
	Pos       [3]float64
	Vorticity [3]float64
}

func (v *Vorton) Position() [3]float64 {
	return v.Pos
}

// Snapshot is an ordered, read-only sequence of vortons
type Snapshot struct {
	vortons []Vorton
}

// NewSnapshot takes ownership of vortons
func NewSnapshot(vortons []Vorton) *Snapshot {
	return &Snapshot{vortons: vortons}
}

// Vortons returns the vortons in their fixed order. Callers must not modify the result.
func (s *Snapshot) Vortons() []Vorton {
	return s.vortons
}

func (s *Snapshot) Len() int {
	return len(s.vortons)
}

// Centroid returns the mean vorton position, or the origin for an empty snapshot
func (s *Snapshot) Centroid() [3]float64 {

	var c [3]float64
	if len(s.vortons) == 0 {
		return c
	}

	for i := 0; i < len(s.vortons); i++ {
		c[0] += s.vortons[i].Pos[0]
		c[1] += s.vortons[i].Pos[1]
		c[2] += s.vortons[i].Pos[2]
	}

	n := float64(len(s.vortons))
	return [3]float64{c[0] / n, c[1] / n, c[2] / n}
}

// Radius returns the largest distance of any vorton from the centroid
func (s *Snapshot) Radius() float64 {

	c := s.Centroid()

	var maxDistSqr float64
	for i := 0; i < len(s.vortons); i++ {

		dx := s.vortons[i].Pos[0] - c[0]
		dy := s.vortons[i].Pos[1] - c[1]
		dz := s.vortons[i].Pos[2] - c[2]

		distSqr := dx*dx + dy*dy + dz*dz
		if distSqr > maxDistSqr {
			maxDistSqr = distSqr
		}
	}

	return math.Sqrt(maxDistSqr)
}

// NewRing samples count vortons evenly on a circle of the given radius in the XZ plane,
// the seed shape of a vortex ring. Vorticity is tangent to the ring.
func NewRing(count int, radius float64, center [3]float64) *Snapshot {

	if count < 0 {
		count = 0
	}

	vortons := make([]Vorton, count)
	for i := 0; i < count; i++ {

		angle := 2 * math.Pi * float64(i) / float64(count)
		sin, cos := math.Sincos(angle)

		vortons[i] = Vorton{
			Pos:       [3]float64{center[0] + radius*cos, center[1], center[2] + radius*sin},
			Vorticity: [3]float64{-sin, 0, cos},
		}
	}

	return NewSnapshot(vortons)
}
