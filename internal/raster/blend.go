package raster

// Op is a Porter-Duff compositing operator. All operators work on
// premultiplied alpha bytes.
type Op uint8

const (
	OpClear    Op = iota // result: 0
	OpSrc                // result: S
	OpDst                // result: D
	OpSrcOver            // result: S + D*(1-Sa), the default
	OpDstOver            // result: S*(1-Da) + D
	OpSrcIn              // result: S*Da
	OpDstIn              // result: D*Sa
	OpSrcOut             // result: S*(1-Da)
	OpDstOut             // result: D*(1-Sa)
	OpSrcAtop            // result: S*Da + D*(1-Sa)
	OpDstAtop            // result: S*(1-Da) + D*Sa
	OpXor                // result: S*(1-Da) + D*(1-Sa)
	OpPlus               // result: min(S+D, 255)
	OpModulate           // result: S*D
)

// BlendFunc combines one premultiplied source pixel with one
// premultiplied destination pixel.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// blendFunc returns the implementation of an operator. Unknown values
// fall back to source-over.
func blendFunc(op Op) BlendFunc {
	switch op {
	case OpClear:
		return func(_, _, _, _, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
			return 0, 0, 0, 0
		}
	case OpSrc:
		return func(sr, sg, sb, sa, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
			return sr, sg, sb, sa
		}
	case OpDst:
		return func(_, _, _, _, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			return dr, dg, db, da
		}
	case OpSrcOver:
		return blendSrcOver
	case OpDstOver:
		return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			inv := 255 - da
			return clampAdd(mulDiv255(sr, inv), dr),
				clampAdd(mulDiv255(sg, inv), dg),
				clampAdd(mulDiv255(sb, inv), db),
				clampAdd(mulDiv255(sa, inv), da)
		}
	case OpSrcIn:
		return func(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
			return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
		}
	case OpDstIn:
		return func(_, _, _, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
		}
	case OpSrcOut:
		return func(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
			inv := 255 - da
			return mulDiv255(sr, inv), mulDiv255(sg, inv), mulDiv255(sb, inv), mulDiv255(sa, inv)
		}
	case OpDstOut:
		return func(_, _, _, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			inv := 255 - sa
			return mulDiv255(dr, inv), mulDiv255(dg, inv), mulDiv255(db, inv), mulDiv255(da, inv)
		}
	case OpSrcAtop:
		return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			inv := 255 - sa
			return clampAdd(mulDiv255(sr, da), mulDiv255(dr, inv)),
				clampAdd(mulDiv255(sg, da), mulDiv255(dg, inv)),
				clampAdd(mulDiv255(sb, da), mulDiv255(db, inv)),
				da
		}
	case OpDstAtop:
		return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			inv := 255 - da
			return clampAdd(mulDiv255(sr, inv), mulDiv255(dr, sa)),
				clampAdd(mulDiv255(sg, inv), mulDiv255(dg, sa)),
				clampAdd(mulDiv255(sb, inv), mulDiv255(db, sa)),
				sa
		}
	case OpXor:
		return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			invDa := 255 - da
			invSa := 255 - sa
			return clampAdd(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
				clampAdd(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
				clampAdd(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
				clampAdd(mulDiv255(sa, invDa), mulDiv255(da, invSa))
		}
	case OpPlus:
		return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			return clampAdd(sr, dr), clampAdd(sg, dg), clampAdd(sb, db), clampAdd(sa, da)
		}
	case OpModulate:
		return func(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
			return mulDiv255(sr, dr), mulDiv255(sg, dg), mulDiv255(sb, db), mulDiv255(sa, da)
		}
	default:
		return blendSrcOver
	}
}

// blendSrcOver composites source over destination: S + D*(1-Sa).
func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return clampAdd(sr, mulDiv255(dr, inv)),
		clampAdd(sg, mulDiv255(dg, inv)),
		clampAdd(sb, mulDiv255(db, inv)),
		clampAdd(sa, mulDiv255(da, inv))
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// clampAdd adds two bytes, clamping to 255.
func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
