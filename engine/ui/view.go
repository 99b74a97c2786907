package ui

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch // cross axis only
)

// UIView stacks its children along one axis.
type UIView struct {
	Common[*UIView]
	flow       LayoutDirection
	gap        float32
	mainAlign  Align
	crossAlign Align
}

func View() *UIView {
	v := &UIView{}
	v.Common = NewCommon(v)
	return v
}

func (v *UIView) Flow(d LayoutDirection) *UIView { v.flow = d; return v }
func (v *UIView) Gap(g float32) *UIView          { v.gap = g; return v }
func (v *UIView) MainAlign(a Align) *UIView      { v.mainAlign = a; return v }
func (v *UIView) CrossAlign(a Align) *UIView     { v.crossAlign = a; return v }

func (v *UIView) axes() (main, cross int) {
	if v.flow == LayoutVertical {
		return 1, 0
	}
	return 0, 1
}

func (v *UIView) Layout(ctx *Context, c Constraints) LayoutResult {
	b := &v.base
	main, cross := v.axes()
	kids := b.children

	inner := Constraints{Max: [2]float32{
		maxf(0, resolveConstraint(c.Max[0])-b.padAlong(0)),
		maxf(0, resolveConstraint(c.Max[1])-b.padAlong(1)),
	}}

	sizes := make([][2]float32, len(kids))
	var mainSum, maxCross float32
	expand := 0
	for i, k := range kids {
		sizes[i] = k.Layout(ctx, inner).Size
		mainSum += sizes[i][main]
		maxCross = maxf(maxCross, sizes[i][cross])
		if k.Node().mode[main] == SizeModeExpand {
			expand++
		}
	}
	var gaps float32
	if len(kids) > 1 {
		gaps = v.gap * float32(len(kids)-1)
	}

	var outer [2]float32
	outer[main] = b.resolveAxis(main, mainSum+gaps+b.padAlong(main), c.Min[main], c.Max[main])
	outer[cross] = b.resolveAxis(cross, maxCross+b.padAlong(cross), c.Min[cross], c.Max[cross])
	b.size = outer

	innerMain := maxf(0, outer[main]-b.padAlong(main))
	innerCross := maxf(0, outer[cross]-b.padAlong(cross))
	free := maxf(0, innerMain-mainSum-gaps)

	if expand > 0 {
		share := free / float32(expand)
		for i, k := range kids {
			if k.Node().mode[main] == SizeModeExpand {
				sizes[i][main] += share
			}
		}
		free = 0
	}

	var cursor float32
	switch v.mainAlign {
	case AlignCenter:
		cursor = free / 2
	case AlignEnd:
		cursor = free
	}

	for i, k := range kids {
		nb := k.Node()
		sz := sizes[i]
		if v.crossAlign == AlignStretch || nb.mode[cross] == SizeModeExpand {
			sz[cross] = innerCross
		}
		sz[cross] = clamp(sz[cross], 0, innerCross)

		var off [2]float32
		off[main] = b.padding[main] + cursor
		off[cross] = b.padding[cross]
		switch v.crossAlign {
		case AlignCenter:
			off[cross] += (innerCross - sz[cross]) / 2
		case AlignEnd:
			off[cross] += innerCross - sz[cross]
		}
		nb.offset, nb.size = off, sz
		cursor += sz[main] + v.gap
	}
	return LayoutResult{Size: outer}
}

// Draw lays the tree out first when v is the root, anchored at the viewport
// origin unless Position moved it.
func (v *UIView) Draw(ctx *Context) {
	b := &v.base
	if b.parent == nil {
		if b.position == ([2]float32{}) {
			b.position = [2]float32{ctx.Viewport[0], ctx.Viewport[1]}
		}
		v.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport[2], ctx.Viewport[3]}})
	}
	b.drawBackground(ctx, b.color)
	for _, k := range b.children {
		b.place(k.Node())
		k.Draw(ctx)
	}
}
