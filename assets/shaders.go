package assets

import "github.com/hajimehoshi/ebiten/v2"

// flashShaderSrc blends a sprite toward white by the Flash uniform.
var flashShaderSrc = []byte(`//kage:unit pixels

package main

var Flash float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	return mix(c, vec4(c.a), Flash) * color
}
`)

var (
	// FlashShader whitens sprites of stunned entities
	FlashShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error
	FlashShader, err = ebiten.NewShader(flashShaderSrc)
	return err
}
