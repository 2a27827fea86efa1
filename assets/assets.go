package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LevelsDir is the directory holding .tmx files in a level file system.
const LevelsDir = "levels"

// EmbeddedLevels returns the levels shipped with the binary.
func EmbeddedLevels() fs.FS {
	return levelFS
}

// LoadLevels loads every level in fsys, sorted by name.
func LoadLevels(fsys fs.FS) ([]*leveldata.Level, error) {
	byName, names, err := leveldata.LoadAllLevels(fsys, LevelsDir)
	if err != nil {
		return nil, err
	}
	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels, nil
}

// Frame is one animation frame with its collision mask.
type Frame struct {
	Image *ebiten.Image
	Mask  *gamemath.Mask
}

// SpriteSet holds a character's sheets keyed "<Sheet>_<left|right>".
type SpriteSet struct {
	sheets map[string][]Frame
}

func NewSpriteSet() *SpriteSet {
	return &SpriteSet{sheets: map[string][]Frame{}}
}

// SheetKey builds the lookup key for a sheet and facing.
func SheetKey(sheet string, facing float64) string {
	if facing < 0 {
		return sheet + "_left"
	}
	return sheet + "_right"
}

func (s *SpriteSet) Add(key string, frames []Frame) {
	s.sheets[key] = frames
}

// Lookup returns the frames for sheet, falling back to Idle in the same
// direction. ok is false when neither exists; callers draw nothing.
func (s *SpriteSet) Lookup(sheet string, facing float64) ([]Frame, string, bool) {
	if s == nil {
		return nil, "", false
	}
	key := SheetKey(sheet, facing)
	if frames, ok := s.sheets[key]; ok && len(frames) > 0 {
		return frames, key, true
	}
	key = SheetKey("Idle", facing)
	if frames, ok := s.sheets[key]; ok && len(frames) > 0 {
		return frames, key, true
	}
	return nil, "", false
}

// Len reports the number of sheets.
func (s *SpriteSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sheets)
}

// AnimationLoader loads and caches sprite sets from a file system laid out
// as images/<character>/<Sheet>_<dir>.png with square frames in a row.
type AnimationLoader struct {
	fsys  fs.FS
	cache map[string]*SpriteSet
}

func NewAnimationLoader(fsys fs.FS) *AnimationLoader {
	return &AnimationLoader{
		fsys:  fsys,
		cache: make(map[string]*SpriteSet),
	}
}

// Load returns the sprite set for a character. A missing directory yields an
// empty set.
func (l *AnimationLoader) Load(character string) (*SpriteSet, error) {
	if set, ok := l.cache[character]; ok {
		return set, nil
	}

	set := NewSpriteSet()
	l.cache[character] = set
	if l.fsys == nil {
		return set, nil
	}

	matches, err := fs.Glob(l.fsys, path.Join("images", character, "*.png"))
	if err != nil {
		return set, fmt.Errorf("glob sprites for %s: %w", character, err)
	}
	for _, p := range matches {
		frames, err := l.loadSheet(p)
		if err != nil {
			return set, err
		}
		set.Add(strings.TrimSuffix(path.Base(p), ".png"), frames)
	}
	return set, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func (l *AnimationLoader) loadSheet(p string) ([]Frame, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet %s: %w", p, err)
	}
	sub, ok := img.(subImager)
	if !ok {
		return nil, fmt.Errorf("sheet %s: unsupported image type %T", p, img)
	}

	b := img.Bounds()
	size := b.Dy()
	if size == 0 {
		return nil, fmt.Errorf("sheet %s is empty", p)
	}
	var frames []Frame
	for x := b.Min.X; x+size <= b.Max.X; x += size {
		frame := sub.SubImage(image.Rect(x, b.Min.Y, x+size, b.Max.Y))
		frames = append(frames, Frame{
			Image: ebiten.NewImageFromImage(frame),
			Mask:  gamemath.MaskFromImage(frame),
		})
	}
	return frames, nil
}
