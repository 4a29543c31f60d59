package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/arcanaland/tableau/internal/layout"
)

// CanvasSize returns the pixel size of a canvas holding the table, its
// axis labels and a border.
func CanvasSize() (width, height int) {
	return layout.TableWidth + layout.TicsWidth + layout.CanvasBorder*2,
		layout.TableHeight + layout.FontHeight + layout.CanvasBorder*2
}

type segment struct {
	from, to layout.Point
	stroke   color.Color
	width    float64
}

// Raster is a Surface that paints into an RGBA image. Table coordinates
// are centred on the image with y pointing up.
type Raster struct {
	img  *image.RGBA
	face font.Face

	pen     layout.Point
	stroke  color.Color
	fill    color.Color
	penSize float64
	cursor  bool

	filling bool
	path    []layout.Point
	pending []segment
}

// NewRaster returns a raster of the given pixel size cleared to bg.
func NewRaster(width, height int, bg color.Color) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Raster{
		img:     img,
		face:    basicfont.Face7x13,
		stroke:  color.Black,
		fill:    color.Black,
		penSize: 1,
		cursor:  true,
	}
}

// toPixel converts a table coordinate into image space. The result may lie
// outside the image; shapes are clipped when they are rasterized.
func (r *Raster) toPixel(p layout.Point) (float32, float32) {
	b := r.img.Bounds()
	x := p.X + float64(b.Dx())/2
	y := float64(b.Dy())/2 - p.Y
	return float32(x), float32(y)
}

func (r *Raster) MoveTo(p layout.Point) {
	r.pen = p
	if r.filling {
		r.path = append(r.path, p)
	}
}

func (r *Raster) LineTo(p layout.Point) {
	seg := segment{from: r.pen, to: p, stroke: r.stroke, width: r.penSize}
	r.pen = p
	if r.filling {
		r.path = append(r.path, p)
		r.pending = append(r.pending, seg)
		return
	}
	r.strokeSegment(seg)
}

func (r *Raster) BeginFill() {
	r.filling = true
	r.path = []layout.Point{r.pen}
	r.pending = nil
}

// EndFill paints the collected region, then the outline drawn while it
// was being collected so the outline stays visible.
func (r *Raster) EndFill() {
	if !r.filling {
		return
	}
	r.filling = false
	if len(r.path) >= 3 {
		r.fillPolygon(r.path, r.fill)
	}
	for _, seg := range r.pending {
		r.strokeSegment(seg)
	}
	r.path, r.pending = nil, nil
}

func (r *Raster) SetColor(stroke, fill color.Color) {
	r.stroke, r.fill = stroke, fill
}

func (r *Raster) SetPenSize(width float64) {
	if width <= 0 {
		width = 1
	}
	r.penSize = width
}

func (r *Raster) Dot(p layout.Point, diameter float64) {
	const sides = 24
	pts := make([]layout.Point, 0, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		pts = append(pts, p.Add(diameter/2*math.Cos(a), diameter/2*math.Sin(a)))
	}
	r.fillPolygon(pts, r.stroke)
}

func (r *Raster) Write(p layout.Point, text string, f Font, a Align) {
	x, y := r.toPixel(p)
	width := font.MeasureString(r.face, text).Ceil()
	left := int(x)
	switch a {
	case AlignCenter:
		left -= width / 2
	case AlignRight:
		left -= width
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.stroke),
		Face: r.face,
		Dot:  fixed.P(left, int(y)),
	}
	d.DrawString(text)
}

// WriteUpsideDown renders text on a scratch image and copies it rotated
// by 180 degrees, centred on p.
func (r *Raster) WriteUpsideDown(p layout.Point, text string, f Font) {
	width := font.MeasureString(r.face, text).Ceil()
	metrics := r.face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width == 0 || height == 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(r.stroke),
		Face: r.face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	cx, cy := r.toPixel(p)
	ox, oy := int(cx)-width/2, int(cy)-height/2
	for ty := 0; ty < height; ty++ {
		for tx := 0; tx < width; tx++ {
			c := scratch.RGBAAt(tx, ty)
			if c.A == 0 {
				continue
			}
			r.img.Set(ox+width-1-tx, oy+height-1-ty, c)
		}
	}
}

func (r *Raster) ShowCursor(show bool) {
	r.cursor = show
}

// Image returns the painted image, with a cursor marker when the cursor
// is visible.
func (r *Raster) Image() image.Image {
	if !r.cursor {
		return r.img
	}
	out := image.NewRGBA(r.img.Bounds())
	draw.Draw(out, out.Bounds(), r.img, image.Point{}, draw.Src)
	tip := r.pen
	marker := []layout.Point{tip, tip.Add(-9, 4), tip.Add(-9, -4)}
	r.rasterize(out, marker, color.Black)
	return out
}

// WritePNG encodes the image as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("failed to encode PNG: %v", err)
	}
	return nil
}

func (r *Raster) strokeSegment(s segment) {
	dx, dy := s.to.X-s.from.X, s.to.Y-s.from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// offset both ends by half the pen width along the normal
	nx, ny := -dy/length*s.width/2, dx/length*s.width/2
	quad := []layout.Point{
		s.from.Add(nx, ny),
		s.to.Add(nx, ny),
		s.to.Add(-nx, -ny),
		s.from.Add(-nx, -ny),
	}
	r.fillPolygon(quad, s.stroke)
}

func (r *Raster) fillPolygon(pts []layout.Point, c color.Color) {
	r.rasterize(r.img, pts, c)
}

type pixel struct{ x, y float32 }

// rasterize fills pts on dst, working only inside the part of the
// polygon's bounding box that lies on dst.
func (r *Raster) rasterize(dst draw.Image, pts []layout.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	poly := make([]pixel, len(pts))
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for i, p := range pts {
		x, y := r.toPixel(p)
		poly[i] = pixel{x, y}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	box := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX)))+1, int(math.Ceil(float64(maxY)))+1,
	).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	poly = clipPolygon(poly, box)
	if len(poly) < 3 {
		return
	}
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	z.MoveTo(poly[0].x-ox, poly[0].y-oy)
	for _, p := range poly[1:] {
		z.LineTo(p.x-ox, p.y-oy)
	}
	z.ClosePath()
	z.Draw(dst, box, image.NewUniform(c), image.Point{})
}

// clipPolygon clips poly to box one edge at a time (Sutherland-Hodgman).
func clipPolygon(poly []pixel, box image.Rectangle) []pixel {
	x0, y0 := float32(box.Min.X), float32(box.Min.Y)
	x1, y1 := float32(box.Max.X), float32(box.Max.Y)

	// each edge keeps the points for which inside is true; cross returns
	// where segment a-b meets the edge
	edges := []struct {
		inside func(p pixel) bool
		cross  func(a, b pixel) pixel
	}{
		{func(p pixel) bool { return p.x >= x0 }, func(a, b pixel) pixel { return atX(a, b, x0) }},
		{func(p pixel) bool { return p.x <= x1 }, func(a, b pixel) pixel { return atX(a, b, x1) }},
		{func(p pixel) bool { return p.y >= y0 }, func(a, b pixel) pixel { return atY(a, b, y0) }},
		{func(p pixel) bool { return p.y <= y1 }, func(a, b pixel) pixel { return atY(a, b, y1) }},
	}

	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		in := poly
		poly = make([]pixel, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				poly = append(poly, cur)
			case e.inside(cur):
				poly = append(poly, e.cross(prev, cur), cur)
			case e.inside(prev):
				poly = append(poly, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return poly
}

func atX(a, b pixel, x float32) pixel {
	t := (x - a.x) / (b.x - a.x)
	return pixel{x, a.y + t*(b.y-a.y)}
}

func atY(a, b pixel, y float32) pixel {
	t := (y - a.y) / (b.y - a.y)
	return pixel{a.x + t*(b.x-a.x), y}
}
