package contribgif

import (
	"fmt"
	"math"
	"strings"
)

// Pose is where, and in what stance, the character stands in one frame.
type Pose struct {
	Col   int     // Target week column
	Row   int     // Target weekday row
	Phase float64 // Walk cycle position in [0, 1)
	Jump  int     // Pixels lifted above the resting position
}

// Motion computes the character's pose for frame i of frames on a grid of cols
// weeks. Implementations are pure and total over [0, frames).
type Motion interface {
	Pose(i, frames, cols int) Pose
}

// progress maps frame i to [0, 1]. A single-frame animation stays at 0.
func progress(i, frames int) float64 {
	if frames <= 1 {
		return 0
	}
	return float64(i) / float64(frames-1)
}

// column maps progress onto the week columns, first to last.
func column(p float64, cols int) int {
	if cols <= 1 {
		return 0
	}
	return int(math.Round(p * float64(cols-1)))
}

// Walk strolls along a fixed row, left to right, swinging its limbs.
type Walk struct {
	Row     int     // Row the feet line up with
	Cadence float64 // Frames per full stride, bigger is slower
}

// DefaultWalk keeps the character near the middle of the week.
var DefaultWalk = Walk{Row: 3, Cadence: 18}

func (w Walk) Pose(i, frames, cols int) Pose {
	cadence := w.Cadence
	if cadence <= 0 {
		cadence = DefaultWalk.Cadence
	}
	return Pose{
		Col:   column(progress(i, frames), cols),
		Row:   w.Row,
		Phase: math.Mod(float64(i)/cadence, 1),
	}
}

// Hop bounces across the grid, weaving up and down the rows.
type Hop struct {
	Amplitude float64 // Jump height in pixels
}

var DefaultHop = Hop{Amplitude: 6}

func (h Hop) Pose(i, frames, cols int) Pose {
	p := progress(i, frames)
	// Two full row sweeps and four hops across the year.
	wave := (math.Sin(4*math.Pi*p) + 1) / 2
	return Pose{
		Col:  column(p, cols),
		Row:  int(math.Round(wave * float64(DaysPerWeek-1))),
		Jump: int(math.Round(math.Abs(math.Sin(8*math.Pi*p)) * h.Amplitude)),
	}
}

// Policy pairs a motion with the sprite drawn for it.
type Policy struct {
	Name   string
	Motion Motion
	Sprite Sprite
}

// Policies known to ParsePolicy.
const (
	PolicyWalk = "walk"
	PolicyHop  = "hop"
)

// ParsePolicy returns the named policy: "walk" draws the alien, "hop" the
// pixel sprite.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyWalk:
		return Policy{Name: PolicyWalk, Motion: DefaultWalk, Sprite: NewAlien(1)}, nil
	case PolicyHop:
		return Policy{Name: PolicyHop, Motion: DefaultHop, Sprite: NewPixelSprite(InvaderMask, 2, AlienGreen)}, nil
	default:
		return Policy{}, fmt.Errorf("unknown motion %q, want %s or %s", name, PolicyWalk, PolicyHop)
	}
}
