// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	livesCols          = 4
	livesCircleRadius  = 8.0
	livesCircleSpacing = 4.0
)

// LivesIndicator отображает оставшиеся жизни уровня сеткой кружков.
type LivesIndicator struct {
	X, Y float32
	Font font.Face
}

// NewLivesIndicator создает новый индикатор жизней.
func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Font: face}
}

// Draw рисует сетку кружков. Запас сверх половины синий, остаток красный,
// потерянные жизни чёрные.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	startX := i.X
	startY := i.Y
	halfLives := maxLives / 2

	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{210, 60, 50, 255}
	blue := color.RGBA{70, 110, 210, 255}
	empty := color.RGBA{10, 10, 14, 255}

	for j := 0; j < maxLives; j++ {
		row := j / livesCols
		col := j % livesCols

		x := startX + float32(col)*(livesCircleRadius*2+livesCircleSpacing)
		y := startY + float32(row)*(livesCircleRadius*2+livesCircleSpacing)

		var clr color.RGBA
		if j < lives {
			if lives <= halfLives {
				clr = red
			} else {
				// Избыток сверх половины синий, остальное красное
				if j < lives-halfLives {
					clr = blue
				} else {
					clr = red
				}
			}
		} else {
			clr = empty
		}

		vector.DrawFilledCircle(screen, x+livesCircleRadius, y+livesCircleRadius, livesCircleRadius, clr, true)
		vector.StrokeCircle(screen, x+livesCircleRadius, y+livesCircleRadius, livesCircleRadius, 1, white, true)
	}

	// Текстовое отображение над сеткой
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	gridWidth := int(livesCols * (livesCircleRadius*2 + livesCircleSpacing))
	drawTextCentered(screen, i.Font, label, int(startX)+gridWidth/2, int(startY)-12, white)
}

// Height возвращает общую высоту индикатора.
func (i *LivesIndicator) Height(maxLives int) float32 {
	rows := (maxLives + livesCols - 1) / livesCols
	textHeight := float32(20)
	gridHeight := float32(rows) * (livesCircleRadius*2 + livesCircleSpacing)
	return textHeight + gridHeight
}
