package renderer2d

// SubTexture2D is a UV sub-rect of a texture, top-left to bottom-right.
type SubTexture2D struct {
	Texture Texture
	U0, V0  float32
	U1, V1  float32
}

// FromPixels builds a subtexture from a pixel rect inside an atlas whose rows
// were uploaded top row first.
func FromPixels(tex Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	return SubTexture2D{
		Texture: tex,
		U0:      float32(x) / float32(atlasW),
		V0:      float32(y) / float32(atlasH),
		U1:      float32(x+w) / float32(atlasW),
		V1:      float32(y+h) / float32(atlasH),
	}
}

// FromGrid picks cell (cx, cy) of a grid of cw x ch cells.
func FromGrid(tex Texture, cx, cy, cw, ch, atlasW, atlasH int) SubTexture2D {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}
