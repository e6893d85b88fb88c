// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ToRGBA переводит цвет go-colorful с альфой 0..1 в color.RGBA (не премультиплицированный).
func ToRGBA(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(min(max(alpha, 0), 1) * 255)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// vertexColor возвращает компоненты для ebiten.Vertex (премультиплицированные).
func vertexColor(r, g, b, a float32) (float32, float32, float32, float32) {
	return r * a, g * a, b * a, a
}

var whiteImg *ebiten.Image

// whiteImage — источник для DrawTriangles, создаётся при первой отрисовке.
func whiteImage() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

func starColor(a float64) color.RGBA {
	return color.RGBA{R: 255, G: 250, B: 235, A: uint8(min(max(a, 0), 1) * 255)}
}

// drawPath заливает замкнутый путь сплошным цветом.
func drawPath(dst *ebiten.Image, p *vector.Path, clr color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := vertexColor(float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	dst.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
