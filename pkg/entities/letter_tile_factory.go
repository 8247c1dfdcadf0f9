package entities

import (
	"log"
	"math/rand/v2"
	"unicode"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/components"
	"github.com/decker502/zeeb/pkg/config"
	"github.com/decker502/zeeb/pkg/ecs"
)

// NewLetterTileEntity 创建一个字母块实体
// 参数:
//   - em: EntityManager 实例
//   - letter: 字母（统一转为小写存储）
//   - x, y: 托盘中的初始位置（世界坐标），同时作为重置时的出生点
//
// 返回: 创建的实体ID
func NewLetterTileEntity(em *ecs.EntityManager, letter rune, x, y float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.LetterTileComponent{Letter: unicode.ToLower(letter)})
	em.AddComponent(id, &components.DraggableComponent{
		IsDragging: false,
		LastX:      x,
		LastY:      y,
		IsOnBoard:  false,
		SpawnX:     x,
		SpawnY:     y,
	})

	return id
}

// TrayPosition 计算第 index 个字母块在托盘中的出生点（世界坐标）
//
// 托盘第一行紧贴棋盘下边缘（y = -C - S/2），之后每行下移一个格子；
// 每行 perRow 个字母块，x 坐标与棋盘各列中心对齐。
func TrayPosition(g board.Geometry, perRow, index int) (x, y float64) {
	col := index % perRow
	trayRow := index / perRow

	x = float64(col)*g.CellSize - g.Extent() + g.CellSize/2
	y = -g.Extent() - g.CellSize/2 - float64(trayRow)*g.CellSize
	return x, y
}

// SpawnLetterTiles 按配置生成全部字母块
//
// 第 i 个字母块的字母从 cfg.Letters.Rows[i] 中随机抽取一个。
//
// 返回: 按生成顺序排列的实体ID列表
func SpawnLetterTiles(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) []ecs.EntityID {
	g := cfg.Geometry()
	ids := make([]ecs.EntityID, 0, len(cfg.Letters.Rows))

	for i, group := range cfg.Letters.Rows {
		letters := []rune(group)
		letter := letters[rng.IntN(len(letters))]

		x, y := TrayPosition(g, cfg.Tray.PerRow, i)
		id := NewLetterTileEntity(em, letter, x, y)
		ids = append(ids, id)

		log.Printf("[LetterTileFactory] 字母块 %d: %c @ (%.1f, %.1f)", id, unicode.ToUpper(letter), x, y)
	}

	return ids
}
