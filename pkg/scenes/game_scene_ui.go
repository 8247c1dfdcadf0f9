package scenes

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"

	"github.com/decker502/zeeb/pkg/components"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 颜色
var (
	cellColorLight = color.RGBA{R: 0xa0, G: 0x84, B: 0x62, A: 0xff}
	cellColorDark  = color.RGBA{R: 0x8b, G: 0x6f, B: 0x4e, A: 0xff}
	trayColor      = color.RGBA{R: 0x4a, G: 0x3b, B: 0x2c, A: 0xff}
	tileColor      = color.RGBA{R: 0xf2, G: 0xe6, B: 0xc9, A: 0xff}
	tileDragColor  = color.RGBA{R: 0xff, G: 0xf4, B: 0xd6, A: 0xff}
	tileEdgeColor  = color.RGBA{R: 0x5c, G: 0x46, B: 0x2e, A: 0xff}
	hudBackground  = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

const (
	// debug 字体单个字符尺寸
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
	// tileInset 字母块相对格子的内缩
	tileInset = 3
)

// Draw 绘制棋盘、托盘、字母块与单词面板
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(trayColor)
	s.drawBoard(screen)
	s.drawTiles(screen)
	s.drawWordPanel(screen)
	s.drawHelp(screen)
}

// drawBoard 绘制棋盘格（两种土色交替）
func (s *GameScene) drawBoard(screen *ebiten.Image) {
	size := s.geometry.CellSize
	for row := 0; row < s.geometry.Size; row++ {
		for col := 0; col < s.geometry.Size; col++ {
			clr := cellColorLight
			if (row+col)%2 == 1 {
				clr = cellColorDark
			}
			wx, wy := s.geometry.GridToWorld(col, row)
			sx, sy := s.camera.WorldToScreen(wx, wy)
			vector.DrawFilledRect(screen,
				float32(sx-size/2), float32(sy-size/2),
				float32(size), float32(size),
				clr, false)
		}
	}
}

// drawTiles 按实体ID顺序绘制字母块，被拖拽的字母块最后绘制（位于最上层）
func (s *GameScene) drawTiles(screen *ebiten.Image) {
	dragging, isDragging := s.dragSystem.DraggingTile()
	for _, id := range s.tiles {
		if isDragging && id == dragging {
			continue
		}
		s.drawTile(screen, id, false)
	}
	if isDragging {
		s.drawTile(screen, dragging, true)
	}
}

func (s *GameScene) drawTile(screen *ebiten.Image, id ecs.EntityID, dragging bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	tile, ok := ecs.GetComponent[*components.LetterTileComponent](s.entityManager, id)
	if !ok {
		return
	}

	size := s.geometry.CellSize - 2*tileInset
	sx, sy := s.camera.WorldToScreen(pos.X, pos.Y)
	left, top := float32(sx-size/2), float32(sy-size/2)

	fill := tileColor
	if dragging {
		fill = tileDragColor
	}
	vector.DrawFilledRect(screen, left, top, float32(size), float32(size), fill, true)
	vector.StrokeRect(screen, left, top, float32(size), float32(size), 2, tileEdgeColor, true)

	letter := string(unicode.ToUpper(tile.Letter))
	ebitenutil.DebugPrintAt(screen, letter, int(sx)-debugGlyphWidth/2, int(sy)-debugGlyphHeight/2)
}

// drawWordPanel 左上角显示当前棋盘上的单词及有效性
func (s *GameScene) drawWordPanel(screen *ebiten.Image) {
	report := s.wordCheckSystem.LastReport()
	lines := report.Summary()
	if len(lines) == 0 {
		return
	}
	lines = append([]string{fmt.Sprintf("WORDS %d/%d", report.ValidCount(), len(report.Words))}, lines...)

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	padding := 5.0
	vector.DrawFilledRect(screen,
		float32(10-padding), float32(10-padding),
		float32(float64(width*debugGlyphWidth)+2*padding),
		float32(float64(len(lines)*debugGlyphHeight)+2*padding),
		hudBackground, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*debugGlyphHeight)
	}
}

// drawHelp 右下角显示按键提示
func (s *GameScene) drawHelp(screen *ebiten.Image) {
	help := fmt.Sprintf("%s: reset  %s: new letters",
		strings.ToUpper(s.config.Input.ResetKey), strings.ToUpper(s.config.Input.NewRoundKey))
	x := s.camera.ScreenWidth - len(help)*debugGlyphWidth - 10
	y := s.camera.ScreenHeight - debugGlyphHeight - 6
	ebitenutil.DebugPrintAt(screen, help, x, y)
}
