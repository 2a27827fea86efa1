package config

// AnimationDef describes how a sheet plays back.
type AnimationDef struct {
	// Delay is the number of ticks each frame is shown.
	Delay int
	// Hold keeps the last frame once the sheet has played through.
	Hold bool
}

// DefaultAnimation is used for sheets without an entry below.
var DefaultAnimation = AnimationDef{Delay: 6}

// SheetAnimations overrides playback per sheet name.
var SheetAnimations = map[string]AnimationDef{
	SheetDead:    {Delay: 6, Hold: true},
	SheetExplode: {Delay: 3},
	SheetBlast:   {Delay: 2, Hold: true},
}

// AnimationFor returns the playback definition for a sheet.
func AnimationFor(sheet string) AnimationDef {
	if def, ok := SheetAnimations[sheet]; ok {
		return def
	}
	return DefaultAnimation
}
