// Package board 实现棋盘占用状态与单词提取
//
// Board 只记录"哪个格子放着哪个字母块"，字母块本身（字母、位置、拖拽状态）
// 由表现层的实体持有。格子里保存的是字母块实体ID，0 表示空格子。
//
// 所有操作都是同步的，由拖拽控制器在单次输入事件内独占调用，不需要加锁。
package board

import (
	"fmt"

	"github.com/decker502/zeeb/pkg/ecs"
)

// TileID 是字母块的标识符，与表现层的实体ID一致
// ecs.InvalidEntity (0) 表示没有字母块
type TileID = ecs.EntityID

// NoTile 表示空格子
const NoTile TileID = ecs.InvalidEntity

// Cell 网格坐标
type Cell struct {
	Col int
	Row int
}

// String 返回 "(col,row)" 形式，方便日志输出
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Board 棋盘占用状态
//
// cells 按行优先存储：cells[row*size+col]
type Board struct {
	size  int
	cells []TileID
}

// NewBoard 创建 size x size 的空棋盘
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]TileID, size*size),
	}
}

// Size 返回棋盘边长
func (b *Board) Size() int {
	return b.size
}

// index 计算格子下标，越界视为调用方违反约定
func (b *Board) index(col, row int) int {
	if col < 0 || col >= b.size || row < 0 || row >= b.size {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range [0,%d)", col, row, b.size))
	}
	return row*b.size + col
}

// IsOccupied 检查格子是否已被占用
func (b *Board) IsOccupied(col, row int) bool {
	return b.cells[b.index(col, row)] != NoTile
}

// Occupant 返回占用格子的字母块，空格子返回 (NoTile, false)
func (b *Board) Occupant(col, row int) (TileID, bool) {
	tile := b.cells[b.index(col, row)]
	return tile, tile != NoTile
}

// PlaceTile 将字母块放入格子
//
// 无条件覆盖原有占用者。调用方必须先用 IsOccupied 确认格子为空，
// 否则会静默挤掉另一个字母块。
func (b *Board) PlaceTile(col, row int, tile TileID) {
	b.cells[b.index(col, row)] = tile
}

// RemoveTile 清空格子，对空格子调用是无操作
func (b *Board) RemoveTile(col, row int) {
	b.cells[b.index(col, row)] = NoTile
}

// Reset 清空所有格子
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = NoTile
	}
}

// OccupiedCount 返回已占用格子数量
func (b *Board) OccupiedCount() int {
	count := 0
	for _, tile := range b.cells {
		if tile != NoTile {
			count++
		}
	}
	return count
}

// FindAnyOccupiedCell 按行优先顺序返回第一个被占用的格子
// 棋盘为空时返回 (Cell{}, false)
func (b *Board) FindAnyOccupiedCell() (Cell, bool) {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] != NoTile {
				return Cell{Col: col, Row: row}, true
			}
		}
	}
	return Cell{}, false
}

// neighborOffsets 上下左右四个方向（不含对角线）
var neighborOffsets = [4]Cell{
	{Col: 0, Row: -1},
	{Col: 0, Row: 1},
	{Col: -1, Row: 0},
	{Col: 1, Row: 0},
}

// IsContiguous 检查所有已放置的字母块是否连成一片（四连通）
//
// 空棋盘视为连通。从任意一个被占用的格子开始做泛洪填充，
// 使用显式栈而不是递归；结束后只要还有被占用但未访问到的格子，
// 就说明棋盘上存在两个以上互不相连的字母块群。
func (b *Board) IsContiguous() bool {
	start, ok := b.FindAnyOccupiedCell()
	if !ok {
		return true
	}

	visited := make([]bool, len(b.cells))
	stack := []Cell{start}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := cell.Row*b.size + cell.Col
		if visited[idx] || b.cells[idx] == NoTile {
			continue
		}
		visited[idx] = true

		for _, d := range neighborOffsets {
			col, row := cell.Col+d.Col, cell.Row+d.Row
			if col < 0 || col >= b.size || row < 0 || row >= b.size {
				continue
			}
			if b.cells[row*b.size+col] != NoTile {
				stack = append(stack, Cell{Col: col, Row: row})
			}
		}
	}

	for i, tile := range b.cells {
		if tile != NoTile && !visited[i] {
			return false
		}
	}
	return true
}
