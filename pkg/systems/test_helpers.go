package systems

import (
	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/components"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/decker502/zeeb/pkg/entities"
)

// testFixture 测试用的棋盘环境：10x10 棋盘，格子边长 50
type testFixture struct {
	em       *ecs.EntityManager
	board    *board.Board
	geometry board.Geometry
	drag     *DragSystem
}

// newTestFixture 创建测试环境
func newTestFixture() *testFixture {
	em := ecs.NewEntityManager()
	b := board.NewBoard(10)
	g := board.NewGeometry(10, 50)
	return &testFixture{
		em:       em,
		board:    b,
		geometry: g,
		drag:     NewDragSystem(em, b, g),
	}
}

// addTrayTile 在托盘第 index 个位置创建字母块
func (f *testFixture) addTrayTile(letter rune, index int) ecs.EntityID {
	x, y := entities.TrayPosition(f.geometry, 10, index)
	return entities.NewLetterTileEntity(f.em, letter, x, y)
}

// dragTo 模拟一次完整拖拽：在字母块当前位置按下，移动到 (x, y) 后松开
func (f *testFixture) dragTo(id ecs.EntityID, x, y float64) PlacementResult {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	if !f.drag.HandlePress(pos.X, pos.Y) {
		return PlacementResult{Outcome: OutcomeNone, Tile: id}
	}
	f.drag.HandleMove(x, y)
	return f.drag.HandleRelease(x, y)
}

// dragToCell 把字母块拖到指定格子中心
func (f *testFixture) dragToCell(id ecs.EntityID, col, row int) PlacementResult {
	x, y := f.geometry.GridToWorld(col, row)
	return f.dragTo(id, x, y)
}

// position 返回字母块当前位置
func (f *testFixture) position(id ecs.EntityID) (float64, float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	return pos.X, pos.Y
}

// draggable 返回字母块拖拽状态
func (f *testFixture) draggable(id ecs.EntityID) *components.DraggableComponent {
	drag, _ := ecs.GetComponent[*components.DraggableComponent](f.em, id)
	return drag
}
