package contribgif

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DefaultFrames is the length of one loop.
const DefaultFrames = 80

type AnimatorOpt func(a *Animator)

// WithFrames sets the number of frames per loop.
func WithFrames(n int) AnimatorOpt {
	return func(a *Animator) {
		a.frames = n
	}
}

// WithGlow blurs a copy of the character underneath it. Zero disables it.
func WithGlow(sigma float64) AnimatorOpt {
	return func(a *Animator) {
		a.glow = sigma
	}
}

// Animator overlays a character on copies of the base canvas.
type Animator struct {
	policy Policy
	layout Layout
	frames int
	glow   float64
}

func NewAnimator(p Policy, l Layout, opts ...AnimatorOpt) *Animator {
	a := Animator{
		policy: p,
		layout: l,
		frames: DefaultFrames,
	}
	for _, opt := range opts {
		opt(&a)
	}
	if a.frames < 0 {
		a.frames = 0
	}
	return &a
}

// Poses returns the pose of every frame, in display order.
func (a *Animator) Poses(cols int) []Pose {
	poses := make([]Pose, a.frames)
	for i := range poses {
		poses[i] = a.policy.Motion.Pose(i, a.frames, cols)
	}
	return poses
}

/*
Animate returns one canvas per frame. Each frame owns a fresh copy of base, so
base is never modified and frames share no pixels.
*/
func (a *Animator) Animate(base *image.RGBA, cols int) []*image.RGBA {
	frames := make([]*image.RGBA, 0, a.frames)
	for _, pose := range a.Poses(cols) {
		frame := Clone(base)
		anchor := a.layout.CellCenter(pose.Col, pose.Row)
		if a.glow > 0 {
			a.drawGlowing(frame, anchor, pose)
		} else {
			a.policy.Sprite.Draw(frame, anchor, pose)
		}
		frames = append(frames, frame)
	}
	return frames
}

func (a *Animator) drawGlowing(frame *image.RGBA, anchor image.Point, pose Pose) {
	layer := image.NewRGBA(frame.Bounds())
	a.policy.Sprite.Draw(layer, anchor, pose)
	halo := imaging.Blur(layer, a.glow)
	draw.Draw(frame, frame.Bounds(), halo, halo.Bounds().Min, draw.Over)
	draw.Draw(frame, frame.Bounds(), layer, layer.Bounds().Min, draw.Over)
}

// Clone deep copies img.
func Clone(img *image.RGBA) *image.RGBA {
	dup := image.NewRGBA(img.Rect)
	if img.Stride == dup.Stride {
		copy(dup.Pix, img.Pix)
		return dup
	}
	// Sub-images have a wider stride than their bounds.
	draw.Draw(dup, dup.Rect, img, img.Rect.Min, draw.Src)
	return dup
}
