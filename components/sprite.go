package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/assets"
	"github.com/automoto/piratecove/assets/animations"
	"github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
)

type SpriteData struct {
	Set      *assets.SpriteSet
	Sheet    string
	Rotation float64

	key  string
	anim *animations.Animation
}

// SetSheet switches the requested sheet, restarting playback on change.
func (s *SpriteData) SetSheet(sheet string) {
	if s.Sheet == sheet {
		return
	}
	s.Sheet = sheet
	if s.anim != nil {
		s.anim.Restart()
	}
}

// Update advances playback for the sheet resolved for facing.
func (s *SpriteData) Update(facing float64) {
	frames, key, ok := s.Set.Lookup(s.Sheet, facing)
	if !ok {
		s.key, s.anim = "", nil
		return
	}
	if key != s.key || s.anim == nil {
		def := config.AnimationFor(s.Sheet)
		s.key = key
		s.anim = animations.NewAnimation(len(frames), def.Delay, def.Hold)
		return
	}
	s.anim.Update()
}

// Current returns the frame to draw.
func (s *SpriteData) Current(facing float64) (assets.Frame, bool) {
	frames, _, ok := s.Set.Lookup(s.Sheet, facing)
	if !ok || s.anim == nil {
		return assets.Frame{}, false
	}
	idx := s.anim.Frame()
	if idx >= len(frames) {
		idx = len(frames) - 1
	}
	return frames[idx], true
}

// Mask returns the collision mask of the current frame, if any.
func (s *SpriteData) Mask(facing float64) *gamemath.Mask {
	f, ok := s.Current(facing)
	if !ok {
		return nil
	}
	return f.Mask
}

// Finished reports whether a held sheet has played through.
func (s *SpriteData) Finished() bool {
	return s.anim != nil && s.anim.Finished
}

var Sprite = donburi.NewComponentType[SpriteData]()
