package systems

import (
	"log"
	"math"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/components"
	"github.com/decker502/zeeb/pkg/ecs"
)

// PlacementOutcome 松开拖拽后的结果
type PlacementOutcome int

const (
	// OutcomeNone 没有正在拖拽的字母块，什么也没发生
	OutcomeNone PlacementOutcome = iota
	// OutcomePlaced 字母块放入了空格子
	OutcomePlaced
	// OutcomeRejected 目标格子被占用，字母块弹回原位，棋盘不变
	OutcomeRejected
	// OutcomeDroppedOffBoard 字母块被放到棋盘下方的托盘区域
	OutcomeDroppedOffBoard
)

// String 返回结果名称
func (o PlacementOutcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlaced:
		return "placed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeDroppedOffBoard:
		return "dropped-off-board"
	default:
		return "unknown"
	}
}

// PlacementResult 一次松开操作的详细结果
type PlacementResult struct {
	Outcome PlacementOutcome
	Tile    ecs.EntityID
	// Cell 目标格子（OutcomePlaced / OutcomeRejected 时有效）
	Cell board.Cell
	// PrevCell 字母块之前所在的格子，HadPrev 为 false 时无意义
	PrevCell board.Cell
	HadPrev  bool
}

// BoardChanged 本次操作是否修改了棋盘
func (r PlacementResult) BoardChanged() bool {
	switch r.Outcome {
	case OutcomePlaced:
		return !r.HadPrev || r.PrevCell != r.Cell
	case OutcomeDroppedOffBoard:
		return r.HadPrev
	default:
		return false
	}
}

// DragSystem 字母块拖拽/放置控制器
//
// 每个字母块的状态机：Idle <-> Dragging
//   - 按下：指针距离字母块中心小于 S/2 时开始拖拽
//   - 移动：被拖拽的字母块跟随指针，不修改棋盘
//   - 松开：根据落点放置、弹回或放入托盘
//
// 棋盘的所有修改都通过本系统完成，一次只处理一个输入事件。
type DragSystem struct {
	entityManager *ecs.EntityManager
	board         *board.Board
	geometry      board.Geometry

	// dragging 当前被拖拽的字母块，ecs.InvalidEntity 表示没有
	dragging ecs.EntityID
}

// NewDragSystem 创建拖拽控制器
func NewDragSystem(em *ecs.EntityManager, b *board.Board, g board.Geometry) *DragSystem {
	return &DragSystem{
		entityManager: em,
		board:         b,
		geometry:      g,
	}
}

// DraggingTile 返回当前被拖拽的字母块
func (s *DragSystem) DraggingTile() (ecs.EntityID, bool) {
	return s.dragging, s.dragging != ecs.InvalidEntity
}

// HandlePress 处理指针按下（世界坐标）
//
// 按实体ID顺序查找第一个中心距离小于 S/2 的字母块并开始拖拽。
// 已经在拖拽时忽略新的按下事件。
//
// 返回: 是否开始了拖拽
func (s *DragSystem) HandlePress(x, y float64) bool {
	if s.dragging != ecs.InvalidEntity {
		return false
	}

	radius := s.geometry.CellSize / 2
	for _, id := range ecs.GetEntitiesWith2[*components.DraggableComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if math.Hypot(pos.X-x, pos.Y-y) >= radius {
			continue
		}

		drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		drag.IsDragging = true
		s.dragging = id
		log.Printf("[DragSystem] 开始拖拽字母块 %d @ (%.1f, %.1f)", id, pos.X, pos.Y)
		return true
	}
	return false
}

// HandleMove 处理指针移动：被拖拽的字母块跟随指针
func (s *DragSystem) HandleMove(x, y float64) {
	if s.dragging == ecs.InvalidEntity {
		return
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.dragging); ok {
		pos.X, pos.Y = x, y
	}
}

// HandleRelease 处理指针松开（世界坐标），结束拖拽并结算放置
func (s *DragSystem) HandleRelease(x, y float64) PlacementResult {
	id := s.dragging
	if id == ecs.InvalidEntity {
		return PlacementResult{Outcome: OutcomeNone}
	}
	s.dragging = ecs.InvalidEntity

	drag, okDrag := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !okDrag || !okPos {
		// 拖拽途中实体被删除
		log.Printf("[DragSystem] 警告: 字母块 %d 已不存在，放弃本次放置", id)
		return PlacementResult{Outcome: OutcomeNone, Tile: id}
	}
	drag.IsDragging = false

	result := PlacementResult{Tile: id}
	if drag.IsOnBoard {
		result.PrevCell = s.geometry.ClosestCell(drag.LastX, drag.LastY)
		result.HadPrev = true
	}

	// 棋盘下方是自由摆放区域，不吸附到格子
	if s.geometry.IsBelowBoard(y) {
		if result.HadPrev {
			s.releaseCell(result.PrevCell, id)
		}
		drag.IsOnBoard = false
		drag.LastX, drag.LastY = x, y
		pos.X, pos.Y = x, y

		result.Outcome = OutcomeDroppedOffBoard
		log.Printf("[DragSystem] 字母块 %d 放入托盘 @ (%.1f, %.1f)", id, x, y)
		return result
	}

	target := s.geometry.ClosestCell(x, y)
	result.Cell = target

	// 目标格子若被自己占着（原地放下）不算冲突
	if occupant, occupied := s.board.Occupant(target.Col, target.Row); occupied && occupant != id {
		pos.X, pos.Y = drag.LastX, drag.LastY

		result.Outcome = OutcomeRejected
		log.Printf("[DragSystem] 格子 %v 已被字母块 %d 占用，字母块 %d 弹回", target, occupant, id)
		return result
	}

	centerX, centerY := s.geometry.CellCenter(target)
	pos.X, pos.Y = centerX, centerY

	s.board.PlaceTile(target.Col, target.Row, id)
	drag.IsOnBoard = true

	// 先释放旧格子，再更新 LastX/LastY（旧格子由 LastX/LastY 推算）
	if result.HadPrev && result.PrevCell != target {
		s.releaseCell(result.PrevCell, id)
	}
	drag.LastX, drag.LastY = centerX, centerY

	result.Outcome = OutcomePlaced
	log.Printf("[DragSystem] 字母块 %d 放入格子 %v", id, target)
	return result
}

// releaseCell 释放字母块原先占用的格子
// 只有格子确实由该字母块占用时才清空，避免误删其他字母块
func (s *DragSystem) releaseCell(cell board.Cell, id ecs.EntityID) {
	if occupant, ok := s.board.Occupant(cell.Col, cell.Row); ok && occupant == id {
		s.board.RemoveTile(cell.Col, cell.Row)
	}
}

// Reset 重置整局：取消拖拽，字母块回到出生点并离开棋盘，清空棋盘
func (s *DragSystem) Reset() {
	s.dragging = ecs.InvalidEntity

	for _, id := range ecs.GetEntitiesWith2[*components.DraggableComponent, *components.PositionComponent](s.entityManager) {
		drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		drag.IsDragging = false
		pos.X, pos.Y = drag.SpawnX, drag.SpawnY
		drag.LastX, drag.LastY = drag.SpawnX, drag.SpawnY
		drag.IsOnBoard = false
	}

	s.board.Reset()
	log.Printf("[DragSystem] 棋盘已重置")
}
