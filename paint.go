package vg

import "github.com/govg/vg/internal/raster"

// FillRule selects how self-intersecting paths determine interior
// regions for filling and clipping.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// TextureType selects how a texture paint behaves outside its source.
type TextureType uint8

const (
	TextureTypePlain TextureType = iota
	TextureTypeTiled
)

// BlendMode is the compositing operator for BlendCanvas. All modes
// operate on premultiplied pixels.
type BlendMode uint8

const (
	BlendModeClear BlendMode = iota
	BlendModeSrc
	BlendModeDst
	BlendModeSrcOver
	BlendModeDstOver
	BlendModeSrcIn
	BlendModeDstIn
	BlendModeSrcOut
	BlendModeDstOut
	BlendModeSrcAtop
	BlendModeDstAtop
	BlendModeXor
	BlendModePlus
	BlendModeModulate
)

// The public enumerations stay stable while the engine's may not; the
// boundary translates through exhaustive tables rather than assuming
// matching numeric values.

var fillRuleTable = map[FillRule]raster.FillRule{
	FillRuleNonZero: raster.FillNonZero,
	FillRuleEvenOdd: raster.FillEvenOdd,
}

var lineCapTable = map[LineCap]raster.LineCap{
	LineCapButt:   raster.CapButt,
	LineCapRound:  raster.CapRound,
	LineCapSquare: raster.CapSquare,
}

var lineJoinTable = map[LineJoin]raster.LineJoin{
	LineJoinMiter: raster.JoinMiter,
	LineJoinRound: raster.JoinRound,
	LineJoinBevel: raster.JoinBevel,
}

var spreadMethodTable = map[SpreadMethod]raster.SpreadMethod{
	SpreadMethodPad:     raster.SpreadPad,
	SpreadMethodReflect: raster.SpreadReflect,
	SpreadMethodRepeat:  raster.SpreadRepeat,
}

var textureTypeTable = map[TextureType]raster.TextureType{
	TextureTypePlain: raster.TexturePlain,
	TextureTypeTiled: raster.TextureTiled,
}

var blendModeTable = map[BlendMode]raster.Op{
	BlendModeClear:    raster.OpClear,
	BlendModeSrc:      raster.OpSrc,
	BlendModeDst:      raster.OpDst,
	BlendModeSrcOver:  raster.OpSrcOver,
	BlendModeDstOver:  raster.OpDstOver,
	BlendModeSrcIn:    raster.OpSrcIn,
	BlendModeDstIn:    raster.OpDstIn,
	BlendModeSrcOut:   raster.OpSrcOut,
	BlendModeDstOut:   raster.OpDstOut,
	BlendModeSrcAtop:  raster.OpSrcAtop,
	BlendModeDstAtop:  raster.OpDstAtop,
	BlendModeXor:      raster.OpXor,
	BlendModePlus:     raster.OpPlus,
	BlendModeModulate: raster.OpModulate,
}

func (r FillRule) raster() raster.FillRule         { return fillRuleTable[r] }
func (c LineCap) raster() raster.LineCap           { return lineCapTable[c] }
func (j LineJoin) raster() raster.LineJoin         { return lineJoinTable[j] }
func (s SpreadMethod) raster() raster.SpreadMethod { return spreadMethodTable[s] }
func (t TextureType) raster() raster.TextureType   { return textureTypeTable[t] }
func (b BlendMode) raster() raster.Op              { return blendModeTable[b] }

func rasterStops(stops GradientStops) []raster.Stop {
	out := make([]raster.Stop, len(stops))
	for i, s := range stops {
		out[i] = raster.Stop{
			Offset: s.Offset,
			R:      s.Color.RedF(),
			G:      s.Color.GreenF(),
			B:      s.Color.BlueF(),
			A:      s.Color.AlphaF(),
		}
	}
	return out
}
