package systems

import (
	"testing"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/components"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/decker502/zeeb/pkg/entities"
)

// TestDragPlaceFromTray 从托盘拖到空格子
func TestDragPlaceFromTray(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('h', 0)

	result := f.dragToCell(tile, 5, 4)

	if result.Outcome != OutcomePlaced {
		t.Fatalf("Outcome = %v, want placed", result.Outcome)
	}
	if result.HadPrev {
		t.Error("tile came from the tray, HadPrev must be false")
	}
	if !result.BoardChanged() {
		t.Error("placing a tray tile changes the board")
	}
	if occupant, ok := f.board.Occupant(5, 4); !ok || occupant != tile {
		t.Errorf("cell (5,4) occupant = (%d,%v), want (%d,true)", occupant, ok, tile)
	}

	wantX, wantY := f.geometry.GridToWorld(5, 4)
	if x, y := f.position(tile); x != wantX || y != wantY {
		t.Errorf("tile position = (%.1f,%.1f), want cell center (%.1f,%.1f)", x, y, wantX, wantY)
	}
	drag := f.draggable(tile)
	if !drag.IsOnBoard || drag.IsDragging {
		t.Errorf("tile state = %+v, want on board and idle", drag)
	}
	if drag.LastX != wantX || drag.LastY != wantY {
		t.Errorf("last confirmed position = (%.1f,%.1f), want (%.1f,%.1f)", drag.LastX, drag.LastY, wantX, wantY)
	}
}

// TestDragSnapsToNearestCell 松开点不在格子中心时吸附到最近格子
func TestDragSnapsToNearestCell(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('a', 0)

	// (10,10) 距离 (5,4) 的中心 (25,25) 最近
	result := f.dragTo(tile, 10, 10)
	if result.Outcome != OutcomePlaced || result.Cell != (board.Cell{Col: 5, Row: 4}) {
		t.Fatalf("result = %+v, want placed at (5,4)", result)
	}
	if x, y := f.position(tile); x != 25 || y != 25 {
		t.Errorf("tile position = (%.1f,%.1f), want (25,25)", x, y)
	}
}

// TestDragRejectedMoveKeepsOccupant 目标格子被占用时弹回，原占用者不变
func TestDragRejectedMoveKeepsOccupant(t *testing.T) {
	f := newTestFixture()
	first := f.addTrayTile('b', 0)
	second := f.addTrayTile('c', 1)

	f.dragToCell(first, 2, 3)
	f.dragToCell(second, 5, 5)

	result := f.dragToCell(second, 2, 3)
	if result.Outcome != OutcomeRejected {
		t.Fatalf("Outcome = %v, want rejected", result.Outcome)
	}
	if result.BoardChanged() {
		t.Error("a rejected move must not change the board")
	}

	if occupant, _ := f.board.Occupant(2, 3); occupant != first {
		t.Errorf("cell (2,3) occupant = %d, want original %d", occupant, first)
	}
	if occupant, _ := f.board.Occupant(5, 5); occupant != second {
		t.Errorf("cell (5,5) occupant = %d, want %d", occupant, second)
	}

	wantX, wantY := f.geometry.GridToWorld(5, 5)
	if x, y := f.position(second); x != wantX || y != wantY {
		t.Errorf("rejected tile at (%.1f,%.1f), want snapped back to (%.1f,%.1f)", x, y, wantX, wantY)
	}
	if !f.draggable(second).IsOnBoard {
		t.Error("rejected tile should still be on the board")
	}
}

// TestDragRejectedFromTraySnapsBackToTray 从托盘拖到被占用的格子，弹回托盘
func TestDragRejectedFromTraySnapsBackToTray(t *testing.T) {
	f := newTestFixture()
	first := f.addTrayTile('b', 0)
	second := f.addTrayTile('c', 1)
	spawnX, spawnY := f.position(second)

	f.dragToCell(first, 4, 4)
	result := f.dragToCell(second, 4, 4)

	if result.Outcome != OutcomeRejected {
		t.Fatalf("Outcome = %v, want rejected", result.Outcome)
	}
	if x, y := f.position(second); x != spawnX || y != spawnY {
		t.Errorf("tile at (%.1f,%.1f), want back in tray at (%.1f,%.1f)", x, y, spawnX, spawnY)
	}
	if f.draggable(second).IsOnBoard {
		t.Error("tile rejected from the tray must stay off-board")
	}
	if f.board.OccupiedCount() != 1 {
		t.Errorf("OccupiedCount = %d, want 1", f.board.OccupiedCount())
	}
}

// TestDragMoveOnBoardFreesOldCell 棋盘上移动字母块时释放旧格子
func TestDragMoveOnBoardFreesOldCell(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('d', 0)

	f.dragToCell(tile, 5, 5)
	result := f.dragToCell(tile, 6, 5)

	if result.Outcome != OutcomePlaced {
		t.Fatalf("Outcome = %v, want placed", result.Outcome)
	}
	if !result.HadPrev || result.PrevCell != (board.Cell{Col: 5, Row: 5}) {
		t.Errorf("PrevCell = %v (HadPrev=%v), want (5,5)", result.PrevCell, result.HadPrev)
	}
	if f.board.IsOccupied(5, 5) {
		t.Error("old cell (5,5) should be freed")
	}
	if !f.board.IsOccupied(6, 5) {
		t.Error("new cell (6,5) should be occupied")
	}
	if f.board.OccupiedCount() != 1 {
		t.Errorf("a tile must occupy exactly one cell, got %d", f.board.OccupiedCount())
	}
}

// TestDragDropOnOwnCell 原地放下不算冲突，棋盘不变
func TestDragDropOnOwnCell(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('e', 0)
	f.dragToCell(tile, 3, 3)

	result := f.dragToCell(tile, 3, 3)
	if result.Outcome != OutcomePlaced {
		t.Fatalf("Outcome = %v, want placed", result.Outcome)
	}
	if result.BoardChanged() {
		t.Error("dropping a tile on its own cell does not change the board")
	}
	if occupant, _ := f.board.Occupant(3, 3); occupant != tile {
		t.Errorf("cell (3,3) occupant = %d, want %d", occupant, tile)
	}
}

// TestDragOffBoardFromBoard 从棋盘拖回托盘区域
func TestDragOffBoardFromBoard(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('f', 0)
	f.dragToCell(tile, 5, 5)

	result := f.dragTo(tile, 40, -300)

	if result.Outcome != OutcomeDroppedOffBoard {
		t.Fatalf("Outcome = %v, want dropped-off-board", result.Outcome)
	}
	if !result.BoardChanged() {
		t.Error("removing a tile from the board changes the board")
	}
	if f.board.IsOccupied(5, 5) {
		t.Error("cell (5,5) should be freed")
	}
	drag := f.draggable(tile)
	if drag.IsOnBoard {
		t.Error("tile should be off-board")
	}
	if drag.LastX != 40 || drag.LastY != -300 {
		t.Errorf("last position = (%.1f,%.1f), want drop point (40,-300)", drag.LastX, drag.LastY)
	}
	if x, y := f.position(tile); x != 40 || y != -300 {
		t.Errorf("tile position = (%.1f,%.1f), want free-form (40,-300)", x, y)
	}
}

// TestDragOffBoardWithinTray 托盘内自由移动不修改棋盘
func TestDragOffBoardWithinTray(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('g', 0)

	result := f.dragTo(tile, 100, -320)
	if result.Outcome != OutcomeDroppedOffBoard || result.HadPrev {
		t.Fatalf("result = %+v, want dropped-off-board without previous cell", result)
	}
	if result.BoardChanged() {
		t.Error("moving inside the tray does not change the board")
	}
	if f.board.OccupiedCount() != 0 {
		t.Errorf("OccupiedCount = %d, want 0", f.board.OccupiedCount())
	}
}

// TestDragFromTrayDoesNotClobberBottomRow 托盘字母块离最下一行格子很近，
// 放到别处时不能误删最下一行上其他字母块
func TestDragFromTrayDoesNotClobberBottomRow(t *testing.T) {
	f := newTestFixture()
	bottom := f.addTrayTile('h', 1)
	trayTile := f.addTrayTile('i', 0) // 出生点 (-225,-275)，最近格子是 (0,9)

	f.dragToCell(bottom, 0, 9)
	f.dragToCell(trayTile, 4, 4)

	if occupant, ok := f.board.Occupant(0, 9); !ok || occupant != bottom {
		t.Errorf("cell (0,9) occupant = (%d,%v), want (%d,true)", occupant, ok, bottom)
	}
	if f.board.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount = %d, want 2", f.board.OccupiedCount())
	}
}

// TestPressHitRadius 按下点距离字母块中心必须小于 S/2
func TestPressHitRadius(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"正中心", 0, 0, true},
		{"半径内", 24.9, 0, true},
		{"对角半径内", 17, 17, true},
		{"恰好在半径上", 25, 0, false},
		{"半径外", 0, -30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture()
			tile := f.addTrayTile('j', 3)
			x, y := f.position(tile)

			if got := f.drag.HandlePress(x+tt.dx, y+tt.dy); got != tt.want {
				t.Errorf("HandlePress(center+(%.1f,%.1f)) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
			if f.draggable(tile).IsDragging != tt.want {
				t.Errorf("IsDragging = %v, want %v", f.draggable(tile).IsDragging, tt.want)
			}
		})
	}
}

// TestReleaseWithoutDrag 没有拖拽时松开什么也不做
func TestReleaseWithoutDrag(t *testing.T) {
	f := newTestFixture()
	f.addTrayTile('k', 0)

	if f.drag.HandlePress(0, 0) {
		t.Fatal("press far from any tile must not start a drag")
	}
	result := f.drag.HandleRelease(0, 0)
	if result.Outcome != OutcomeNone {
		t.Errorf("Outcome = %v, want none", result.Outcome)
	}
	if f.board.OccupiedCount() != 0 {
		t.Error("board must stay empty")
	}
}

// TestMoveFollowsPointer 拖拽中字母块跟随指针，棋盘不变
func TestMoveFollowsPointer(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('l', 0)
	x, y := f.position(tile)

	f.drag.HandlePress(x, y)
	f.drag.HandleMove(12, 34)

	if px, py := f.position(tile); px != 12 || py != 34 {
		t.Errorf("tile position = (%.1f,%.1f), want (12,34)", px, py)
	}
	if f.board.OccupiedCount() != 0 {
		t.Error("moving must not mutate the board")
	}
	if id, ok := f.drag.DraggingTile(); !ok || id != tile {
		t.Errorf("DraggingTile() = (%d,%v), want (%d,true)", id, ok, tile)
	}
}

// TestPressWhileDraggingIgnored 拖拽中再次按下不会切换字母块
func TestPressWhileDraggingIgnored(t *testing.T) {
	f := newTestFixture()
	first := f.addTrayTile('m', 0)
	second := f.addTrayTile('n', 1)

	x1, y1 := f.position(first)
	x2, y2 := f.position(second)
	f.drag.HandlePress(x1, y1)

	if f.drag.HandlePress(x2, y2) {
		t.Error("second press during a drag must be ignored")
	}
	if id, _ := f.drag.DraggingTile(); id != first {
		t.Errorf("DraggingTile() = %d, want %d", id, first)
	}
	if f.draggable(second).IsDragging {
		t.Error("second tile must not enter dragging state")
	}
}

// TestPressOverlappingTilesPicksLowestID 重叠的字母块按实体ID顺序命中
func TestPressOverlappingTilesPicksLowestID(t *testing.T) {
	f := newTestFixture()
	first := entities.NewLetterTileEntity(f.em, 'o', 0, -300)
	second := entities.NewLetterTileEntity(f.em, 'p', 0, -300)

	f.drag.HandlePress(0, -300)
	if id, _ := f.drag.DraggingTile(); id != first {
		t.Errorf("DraggingTile() = %d, want lowest id %d", id, first)
	}
	if f.draggable(second).IsDragging {
		t.Error("only one tile may be dragged")
	}
}

// TestResetRestoresSpawn 重置：字母块回到出生点，棋盘清空，拖拽取消
func TestResetRestoresSpawn(t *testing.T) {
	f := newTestFixture()
	a := f.addTrayTile('q', 0)
	b := f.addTrayTile('r', 1)
	c := f.addTrayTile('s', 2)

	f.dragToCell(a, 1, 1)
	f.dragToCell(b, 2, 1)
	// c 拖拽到一半时重置
	cx, cy := f.position(c)
	f.drag.HandlePress(cx, cy)
	f.drag.HandleMove(0, 0)

	f.drag.Reset()

	if _, ok := f.board.FindAnyOccupiedCell(); ok {
		t.Error("board must be empty after reset")
	}
	if _, dragging := f.drag.DraggingTile(); dragging {
		t.Error("reset must cancel the drag in progress")
	}
	for _, id := range []ecs.EntityID{a, b, c} {
		drag := f.draggable(id)
		if drag.IsDragging || drag.IsOnBoard {
			t.Errorf("tile %d state after reset = %+v", id, drag)
		}
		x, y := f.position(id)
		if x != drag.SpawnX || y != drag.SpawnY || drag.LastX != drag.SpawnX || drag.LastY != drag.SpawnY {
			t.Errorf("tile %d at (%.1f,%.1f) last (%.1f,%.1f), want spawn (%.1f,%.1f)",
				id, x, y, drag.LastX, drag.LastY, drag.SpawnX, drag.SpawnY)
		}
	}

	// 重置后的松开事件没有效果
	if result := f.drag.HandleRelease(0, 0); result.Outcome != OutcomeNone {
		t.Errorf("release after reset = %v, want none", result.Outcome)
	}
}

// TestReleaseAfterEntityDestroyed 拖拽途中实体被删除
func TestReleaseAfterEntityDestroyed(t *testing.T) {
	f := newTestFixture()
	tile := f.addTrayTile('t', 0)
	x, y := f.position(tile)
	f.drag.HandlePress(x, y)

	f.em.DestroyEntity(tile)
	f.em.RemoveMarkedEntities()

	result := f.drag.HandleRelease(0, 0)
	if result.Outcome != OutcomeNone {
		t.Errorf("Outcome = %v, want none", result.Outcome)
	}
	if f.board.OccupiedCount() != 0 {
		t.Error("board must stay empty")
	}
	if _, ok := ecs.GetComponent[*components.DraggableComponent](f.em, tile); ok {
		t.Error("destroyed entity must not be resurrected")
	}
}

// TestTileOccupiesAtMostOneCell 一系列操作后每个字母块最多占一个格子
func TestTileOccupiesAtMostOneCell(t *testing.T) {
	f := newTestFixture()
	tiles := []ecs.EntityID{f.addTrayTile('u', 0), f.addTrayTile('v', 1), f.addTrayTile('w', 2)}

	moves := []struct {
		tile     int
		col, row int
	}{
		{0, 0, 0}, {1, 1, 0}, {2, 2, 0},
		{0, 1, 0},                       // 被占用，弹回
		{0, 0, 1}, {1, 0, 0}, {2, 0, 0}, // 第三次被占用
		{2, 9, 9}, {0, 9, 9},
	}
	for _, m := range moves {
		f.dragToCell(tiles[m.tile], m.col, m.row)
	}

	seen := map[ecs.EntityID]int{}
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if id, ok := f.board.Occupant(col, row); ok {
				seen[id]++
			}
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("tile %d occupies %d cells", id, n)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 tiles on the board, got %d", len(seen))
	}
}
