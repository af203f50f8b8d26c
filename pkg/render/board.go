// pkg/render/board.go
package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"merge-defense/internal/entity"
	"merge-defense/pkg/grid"
)

const (
	laneEdgeWidth  = 56.0
	laneInnerWidth = 46.0
	hpBarWidth     = 30.0
	hpBarHeight    = 4.0
)

// BoardRenderer рисует поле, дорожку и все сущности ECS. Задник
// (фон, дорожка, сетка клеток) рендерится один раз в картинку и дальше
// кладётся на экран одним вызовом.
type BoardRenderer struct {
	grid     *grid.Grid
	path     *grid.Path
	screenW  int
	screenH  int
	colors   BoardColors
	whiteImg *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	fontFace font.Face
	boardImg *ebiten.Image
}

func NewBoardRenderer(g *grid.Grid, path *grid.Path, screenW, screenH int, colors BoardColors) *BoardRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	r := &BoardRenderer{
		grid:     g,
		path:     path,
		screenW:  screenW,
		screenH:  screenH,
		colors:   colors,
		whiteImg: whiteImg,
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 96),
		strokeVs: make([]ebiten.Vertex, 0, 64),
		strokeIs: make([]uint16, 0, 96),
		fontFace: basicfont.Face7x13,
		boardImg: ebiten.NewImage(screenW, screenH),
	}
	r.RenderBoardImage()
	return r
}

// SetPath меняет дорожку (смена уровня) и перерисовывает задник.
func (r *BoardRenderer) SetPath(path *grid.Path) {
	r.path = path
	r.RenderBoardImage()
}

// SetFontFace заменяет растровый шрифт по умолчанию.
func (r *BoardRenderer) SetFontFace(face font.Face) {
	if face != nil {
		r.fontFace = face
	}
}

// RenderBoardImage создаёт предрендеренное изображение задника.
func (r *BoardRenderer) RenderBoardImage() {
	r.boardImg.Fill(r.colors.Background)
	r.drawLane(r.boardImg)

	for y := 0; y < r.grid.Rows; y++ {
		for x := 0; x < r.grid.Cols; x++ {
			cx, cy := r.grid.CellCenter(grid.Cell{X: x, Y: y})
			half := r.grid.CellSize / 2
			r.fillRect(r.boardImg, cx-half, cy-half, r.grid.CellSize, r.grid.CellSize, r.colors.Cell)
			r.strokeRect(r.boardImg, cx-half, cy-half, r.grid.CellSize, r.grid.CellSize, r.colors.StrokeWidth, r.colors.CellLine)
		}
	}
}

func (r *BoardRenderer) drawLane(target *ebiten.Image) {
	points := r.path.Points()
	if len(points) < 2 {
		return
	}
	lanePath := vector.Path{}
	lanePath.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		lanePath.LineTo(float32(p.X), float32(p.Y))
	}

	stroke := func(width float32, clr color.RGBA) {
		r.strokeVs, r.strokeIs = lanePath.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
			Width:    width,
			LineCap:  vector.LineCapRound,
			LineJoin: vector.LineJoinRound,
		})
		applyVertexColor(r.strokeVs, clr)
		target.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	stroke(laneEdgeWidth, r.colors.LaneEdge)
	stroke(laneInnerWidth, r.colors.Lane)
}

// Draw рисует кадр: задник, выделение, защитников, врагов, снаряды и
// всплывающий текст. selected подсвечивает выбранную для слияния клетку.
func (r *BoardRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, selected *grid.Cell) {
	screen.DrawImage(r.boardImg, nil)

	if selected != nil {
		cx, cy := r.grid.CellCenter(*selected)
		half := r.grid.CellSize / 2
		r.strokeRect(screen, cx-half, cy-half, r.grid.CellSize, r.grid.CellSize, 3, color.RGBA{255, 255, 255, 255})
	}

	for id, defender := range ecs.Defenders {
		pos, hasPos := ecs.Positions[id]
		rend, hasRend := ecs.Renderables[id]
		if !hasPos || !hasRend {
			continue
		}
		r.fillCircle(screen, pos.X, pos.Y, float64(rend.Radius), rend.Color)
		if turret, ok := ecs.Turrets[id]; ok {
			r.drawBarrel(screen, pos.X, pos.Y, float64(rend.Radius), turret.CurrentAngle, rend.Color)
		}
		if rend.HasStroke {
			r.strokeCircle(screen, pos.X, pos.Y, float64(rend.Radius), 2, color.RGBA{255, 255, 255, 255})
		}
		r.drawCenteredText(screen, strconv.Itoa(defender.Tier), pos.X, pos.Y+4, color.RGBA{20, 20, 30, 255})
	}

	for id := range ecs.Enemies {
		pos, hasPos := ecs.Positions[id]
		rend, hasRend := ecs.Renderables[id]
		if !hasPos || !hasRend {
			continue
		}
		clr := rend.Color
		if _, frozen := ecs.FrozenEffects[id]; frozen {
			clr = BlendColors(clr, color.RGBA{150, 215, 255, 255}, 0.55)
		}
		if flash, ok := ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
			k := 1 - flash.Timer/flash.Duration
			clr = BlendColors(clr, color.RGBA{255, 255, 255, 255}, 0.7*k)
		}
		r.fillCircle(screen, pos.X, pos.Y, float64(rend.Radius), clr)
		if rend.HasStroke {
			r.strokeCircle(screen, pos.X, pos.Y, float64(rend.Radius), 2, color.RGBA{255, 255, 255, 255})
		}
		if health, ok := ecs.Healths[id]; ok && health.Max > 0 {
			r.drawHealthBar(screen, pos.X, pos.Y-float64(rend.Radius)-8, float64(health.Value)/float64(health.Max))
		}
	}

	for id := range ecs.Projectiles {
		pos, hasPos := ecs.Positions[id]
		rend, hasRend := ecs.Renderables[id]
		if !hasPos || !hasRend {
			continue
		}
		r.fillCircle(screen, pos.X, pos.Y, float64(rend.Radius), rend.Color)
	}

	for id, wave := range ecs.Shockwaves {
		pos, hasPos := ecs.Positions[id]
		if !hasPos || wave.Duration <= 0 {
			continue
		}
		k := wave.Timer / wave.Duration
		if k > 1 {
			k = 1
		}
		ringColor := FadeColor(color.RGBA{255, 235, 140, 255}, 1-k)
		r.strokeCircle(screen, pos.X, pos.Y, wave.MaxRadius*k, float32(6*(1-k))+1, ringColor)
	}

	for id, ft := range ecs.FloatingTexts {
		pos, hasPos := ecs.Positions[id]
		if !hasPos || ft.Duration <= 0 {
			continue
		}
		fade := 1 - ft.Timer/ft.Duration
		r.drawCenteredText(screen, ft.Value, pos.X, pos.Y, FadeColor(ft.Color, fade))
	}
}

// drawBarrel рисует ствол защитника по текущему углу турели. Линия
// начинается внутри корпуса, чтобы стык не просвечивал при повороте.
func (r *BoardRenderer) drawBarrel(target *ebiten.Image, cx, cy, radius, angle float64, base color.RGBA) {
	length := radius * 1.55
	tipX := cx + math.Cos(angle)*length
	tipY := cy + math.Sin(angle)*length

	var p vector.Path
	p.MoveTo(float32(cx), float32(cy))
	p.LineTo(float32(tipX), float32(tipY))
	r.strokePath(target, &p, float32(radius*0.4), DarkenColor(base))
}

func (r *BoardRenderer) drawHealthBar(target *ebiten.Image, cx, cy, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	x := cx - hpBarWidth/2
	r.fillRect(target, x, cy, hpBarWidth, hpBarHeight, color.RGBA{25, 25, 30, 220})
	barColor := BlendColors(color.RGBA{210, 70, 60, 255}, color.RGBA{90, 200, 90, 255}, fraction)
	r.fillRect(target, x, cy, hpBarWidth*fraction, hpBarHeight, barColor)
}

func (r *BoardRenderer) drawCenteredText(target *ebiten.Image, value string, cx, cy float64, clr color.RGBA) {
	bounds := text.BoundString(r.fontFace, value)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(target, value, r.fontFace, int(cx)-w/2, int(cy), clr)
}

func (r *BoardRenderer) fillRect(target *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	p := vector.Path{}
	p.MoveTo(float32(x), float32(y))
	p.LineTo(float32(x+w), float32(y))
	p.LineTo(float32(x+w), float32(y+h))
	p.LineTo(float32(x), float32(y+h))
	p.Close()
	r.fillPath(target, &p, clr)
}

func (r *BoardRenderer) strokeRect(target *ebiten.Image, x, y, w, h float64, width float32, clr color.RGBA) {
	p := vector.Path{}
	p.MoveTo(float32(x), float32(y))
	p.LineTo(float32(x+w), float32(y))
	p.LineTo(float32(x+w), float32(y+h))
	p.LineTo(float32(x), float32(y+h))
	p.Close()
	r.strokePath(target, &p, width, clr)
}

func (r *BoardRenderer) fillCircle(target *ebiten.Image, cx, cy, radius float64, clr color.RGBA) {
	if radius <= 0 {
		return
	}
	p := vector.Path{}
	p.Arc(float32(cx), float32(cy), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	r.fillPath(target, &p, clr)
}

func (r *BoardRenderer) strokeCircle(target *ebiten.Image, cx, cy, radius float64, width float32, clr color.RGBA) {
	p := vector.Path{}
	p.Arc(float32(cx), float32(cy), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	r.strokePath(target, &p, width, clr)
}

func (r *BoardRenderer) fillPath(target *ebiten.Image, p *vector.Path, clr color.RGBA) {
	r.fillVs, r.fillIs = p.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	applyVertexColor(r.fillVs, clr)
	target.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *BoardRenderer) strokePath(target *ebiten.Image, p *vector.Path, width float32, clr color.RGBA) {
	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{Width: width})
	applyVertexColor(r.strokeVs, clr)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func applyVertexColor(vs []ebiten.Vertex, clr color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
}
