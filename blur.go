package panelcast

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurFilter applies a Kawase-style blur using iterative downscale/upscale
// passes. Bilinear filtering during DrawImage does the work, so no shader
// is needed.
type blurFilter struct {
	temps []*ebiten.Image
	out   *ebiten.Image
	op    ebiten.DrawImageOptions
}

// apply blurs src by radius pixels into the filter's own output image, which
// has the same size as src and stays valid until the next apply.
func (f *blurFilter) apply(src *ebiten.Image, radius int) *ebiten.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if f.out == nil || f.out.Bounds().Dx() != w || f.out.Bounds().Dy() != h {
		if f.out != nil {
			f.out.Deallocate()
		}
		f.out = ebiten.NewImage(w, h)
	} else {
		f.out.Clear()
	}

	op := &f.op
	if radius <= 1 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		f.out.DrawImage(src, op)
		return f.out
	}

	// One halving per doubling of the radius.
	passes := max(1, int(math.Ceil(math.Log2(float64(radius)))))
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:passes]

	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if f.temps[i] == nil || f.temps[i].Bounds().Dx() != w || f.temps[i].Bounds().Dy() != h {
			if f.temps[i] != nil {
				f.temps[i].Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			f.temps[i].Clear()
		}
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}
	f.scaleInto(f.out, current)
	return f.out
}

// scaleInto draws src stretched over all of dst with linear filtering.
func (f *blurFilter) scaleInto(dst, src *ebiten.Image) {
	op := &f.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sb, db := src.Bounds(), dst.Bounds()
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

func (f *blurFilter) dispose() {
	for _, img := range f.temps {
		if img != nil {
			img.Deallocate()
		}
	}
	f.temps = nil
	if f.out != nil {
		f.out.Deallocate()
		f.out = nil
	}
}

// blurCache keeps one blur filter per panel slot so offscreen images are
// reused across frames.
type blurCache struct {
	filters []*blurFilter
}

func (c *blurCache) apply(slot int, src *ebiten.Image, radius int) *ebiten.Image {
	for len(c.filters) <= slot {
		c.filters = append(c.filters, &blurFilter{})
	}
	return c.filters[slot].apply(src, radius)
}

// trim releases filters for slots at or beyond n.
func (c *blurCache) trim(n int) {
	if n >= len(c.filters) {
		return
	}
	for _, f := range c.filters[n:] {
		f.dispose()
	}
	clear(c.filters[n:])
	c.filters = c.filters[:n]
}
