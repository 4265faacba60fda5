// Package render draws a treefx scene with Ebitengine.
//
// Scene nodes become triangles submitted in one DrawTriangles32 call per
// frame: branch lines as quads with optional round caps, ellipses as fans,
// and grass blades as strips between their facing outline points. The y-up
// scene frame is flipped onto the screen with the trunk foot at the bottom
// centre.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/treefx"
)

const (
	// capSegments is the resolution of a round line cap.
	capSegments = 8
	// backdropBands is the number of horizontal strips in the backdrop.
	backdropBands = 32
)

// Backdrop gradient stops, from the ground up. The horizon stop sits at
// BackdropHorizon of the screen height and the top fades out.
var (
	BackdropGround  = treefx.RGB(154.0/255, 205.0/255, 50.0/255)
	BackdropSky     = treefx.RGB(173.0/255, 216.0/255, 230.0/255)
	BackdropTop     = treefx.Color{R: 1, G: 1, B: 1, A: 0}
	BackdropHorizon = 0.3
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Renderer draws a scene onto an ebiten image.
type Renderer struct {
	scene  *treefx.Scene
	Width  int
	Height int

	// Ground, Sky and Top are the backdrop stops, drawn inside an ellipse
	// that spans the full height and two thirds of the width.
	Ground treefx.Color
	Sky    treefx.Color
	Top    treefx.Color

	verts   []ebiten.Vertex
	inds    []uint32
	outline []treefx.Vec2
}

// New returns a renderer for scene at the given logical size.
func New(scene *treefx.Scene, width, height int) *Renderer {
	return &Renderer{
		scene:     scene,
		Width:     width,
		Height:    height,
		Ground:    BackdropGround,
		Sky:       BackdropSky,
		Top:       BackdropTop,
	}
}

// Draw refreshes world transforms and draws the backdrop and every visible node.
func (r *Renderer) Draw(dst *ebiten.Image) {
	r.scene.Update()
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	r.appendBackdrop()
	r.scene.Walk(func(n *treefx.Node) bool {
		alpha := n.WorldAlpha()
		if alpha <= 0 {
			return false
		}
		switch n.Type {
		case treefx.NodeTypeLine:
			r.appendLine(n, alpha)
		case treefx.NodeTypeEllipse:
			r.appendEllipse(n, alpha)
		case treefx.NodeTypePath:
			r.appendBlade(n, alpha)
		}
		return true
	})

	if len(r.inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true
	dst.DrawTriangles32(r.verts, r.inds, ensureWhitePixel(), &triOp)
}

// toScreen maps a scene point to screen space.
func (r *Renderer) toScreen(x, y float64) (float32, float32) {
	return float32(float64(r.Width)/2 - x), float32(float64(r.Height) - y)
}

func (r *Renderer) vertex(x, y float64, c treefx.Color, alpha float64) ebiten.Vertex {
	sx, sy := r.toScreen(x, y)
	a := float32(c.A * alpha)
	return ebiten.Vertex{
		DstX:   sx,
		DstY:   sy,
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	}
}

// backdropColor samples the gradient at t, the fraction of the height above
// the ground.
func (r *Renderer) backdropColor(t float64) treefx.Color {
	if t <= BackdropHorizon {
		return r.Ground.Lerp(r.Sky, t/BackdropHorizon)
	}
	return r.Sky.Lerp(r.Top, (t-BackdropHorizon)/(1-BackdropHorizon))
}

// appendBackdrop fills the elliptical backdrop centred above the trunk foot
// as a stack of bands, each row spanning the ellipse's chord at its height.
func (r *Renderer) appendBackdrop() {
	h := float64(r.Height)
	rx, ry := float64(r.Width)/3, h/2
	if rx <= 0 || ry <= 0 {
		return
	}
	base := uint32(len(r.verts))
	for i := 0; i <= backdropBands; i++ {
		t := float64(i) / backdropBands
		y := t * h
		dy := (y - ry) / ry
		half := rx * math.Sqrt(math.Max(0, 1-dy*dy))
		c := r.backdropColor(t)
		r.verts = append(r.verts,
			r.vertex(-half, y, c, 1),
			r.vertex(half, y, c, 1),
		)
	}
	for i := uint32(0); i < backdropBands; i++ {
		a := base + 2*i
		r.inds = append(r.inds, a, a+1, a+2, a+1, a+3, a+2)
	}
}

func (r *Renderer) appendLine(n *treefx.Node, alpha float64) {
	if n.StrokeWidth <= 0 {
		return
	}
	m := n.WorldTransform()
	x0, y0 := treefx.TransformPoint(m, 0, 0)
	x1, y1 := treefx.TransformPoint(m, 0, n.EndY)
	half := n.StrokeWidth / 2
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length > 0 {
		// normal scaled to half the stroke
		nx, ny := -dy/length*half, dx/length*half
		base := uint32(len(r.verts))
		c := n.StrokeColor
		r.verts = append(r.verts,
			r.vertex(x0+nx, y0+ny, c, alpha),
			r.vertex(x0-nx, y0-ny, c, alpha),
			r.vertex(x1+nx, y1+ny, c, alpha),
			r.vertex(x1-nx, y1-ny, c, alpha),
		)
		r.inds = append(r.inds, base, base+1, base+2, base+1, base+3, base+2)
	}
	if n.RoundCap {
		r.appendDisc(x0, y0, half, n.StrokeColor, alpha)
		if length > 0 {
			r.appendDisc(x1, y1, half, n.StrokeColor, alpha)
		}
	}
}

func (r *Renderer) appendDisc(cx, cy, radius float64, c treefx.Color, alpha float64) {
	r.outline = treefx.AppendEllipse(r.outline[:0], radius, radius, capSegments)
	centre := uint32(len(r.verts))
	r.verts = append(r.verts, r.vertex(cx, cy, c, alpha))
	for _, p := range r.outline {
		r.verts = append(r.verts, r.vertex(cx+p.X, cy+p.Y, c, alpha))
	}
	r.appendFan(centre, len(r.outline))
}

func (r *Renderer) appendEllipse(n *treefx.Node, alpha float64) {
	if n.RadiusX <= 0 || n.RadiusY <= 0 {
		return
	}
	m := n.WorldTransform()
	r.outline = treefx.AppendEllipse(r.outline[:0], n.RadiusX, n.RadiusY, treefx.EllipseSegments)
	centre := uint32(len(r.verts))
	cx, cy := treefx.TransformPoint(m, 0, 0)
	r.verts = append(r.verts, r.vertex(cx, cy, n.Color, alpha))
	for _, p := range r.outline {
		x, y := treefx.TransformPoint(m, p.X, p.Y)
		r.verts = append(r.verts, r.vertex(x, y, n.Color, alpha))
	}
	r.appendFan(centre, len(r.outline))
}

// appendFan closes a fan of count rim vertices following centre.
func (r *Renderer) appendFan(centre uint32, count int) {
	for i := 0; i < count; i++ {
		a := centre + 1 + uint32(i)
		b := centre + 1 + uint32((i+1)%count)
		r.inds = append(r.inds, centre, a, b)
	}
}

// appendBlade fills a blade outline as a strip: point i faces point
// len-1-i across the blade.
func (r *Renderer) appendBlade(n *treefx.Node, alpha float64) {
	path := n.Path
	if len(path) < 3 {
		return
	}
	m := n.WorldTransform()
	base := uint32(len(r.verts))
	for _, p := range path {
		x, y := treefx.TransformPoint(m, p.X, p.Y)
		r.verts = append(r.verts, r.vertex(x, y, n.Color, alpha))
	}
	last := uint32(len(path) - 1)
	for i := uint32(0); i < last/2; i++ {
		j := last - i
		r.inds = append(r.inds, base+i, base+i+1, base+j)
		if i+1 < j-1 {
			r.inds = append(r.inds, base+i+1, base+j-1, base+j)
		}
	}
}
