package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay shows FPS, TPS and the live duplicate count in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type StatsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	duplicates func() int
}

// NewStatsOverlay creates an overlay. duplicates may be nil.
func NewStatsOverlay(duplicates func() int) *StatsOverlay {
	// 140x48 is enough for three short lines of debug text
	return &StatsOverlay{img: ebiten.NewImage(140, 48), duplicates: duplicates, lastUpdate: 0.5}
}

// Update redraws the text when due.
func (s *StatsOverlay) Update(dt float64) {
	s.lastUpdate += dt
	if s.lastUpdate < 0.5 {
		return
	}
	s.lastUpdate = 0

	s.img.Clear()
	// Semi-transparent background for readability
	s.img.Fill(color.RGBA{0, 0, 0, 128})

	text := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if s.duplicates != nil {
		text += fmt.Sprintf("\nFalling: %d", s.duplicates())
	}
	ebitenutil.DebugPrint(s.img, text)
}

// Draw draws the overlay onto dst.
func (s *StatsOverlay) Draw(dst *ebiten.Image) {
	dst.DrawImage(s.img, nil)
}
