package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（一局棋盘游戏）
// 每个场景有自己的更新与绘制逻辑
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
