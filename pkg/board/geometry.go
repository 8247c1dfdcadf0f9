package board

import "math"

// Geometry 描述棋盘在世界坐标中的摆放方式
//
// 坐标系约定：
//   - 网格坐标：整数 (col, row)，row 0 在最上方
//   - 世界坐标：以棋盘中心为原点，y 轴向上
//
// Geometry 是纯值类型，不持有任何状态，可随意复制。
type Geometry struct {
	Size     int     // 棋盘边长 N（格子数）
	CellSize float64 // 单个格子边长 S（世界单位）
}

// NewGeometry 创建棋盘几何参数
func NewGeometry(size int, cellSize float64) Geometry {
	return Geometry{Size: size, CellSize: cellSize}
}

// Extent 返回棋盘半边长 C = N*S/2
// 棋盘在世界坐标中占据 [-C, C] x [-C, C]
func (g Geometry) Extent() float64 {
	return float64(g.Size) * g.CellSize / 2
}

// Contains 检查网格坐标是否在棋盘范围内
func (g Geometry) Contains(col, row int) bool {
	return col >= 0 && col < g.Size && row >= 0 && row < g.Size
}

// GridToWorld 将网格坐标转换为格子中心的世界坐标
//
// 公式:
//
//	x =  col*S - C + S/2
//	y = -(row*S - C + S/2)
//
// row 轴与世界 y 轴方向相反。
func (g Geometry) GridToWorld(col, row int) (x, y float64) {
	c := g.Extent()
	x = float64(col)*g.CellSize - c + g.CellSize/2
	y = -(float64(row)*g.CellSize - c + g.CellSize/2)
	return x, y
}

// CellCenter 与 GridToWorld 相同，接受 Cell 参数
func (g Geometry) CellCenter(cell Cell) (x, y float64) {
	return g.GridToWorld(cell.Col, cell.Row)
}

// ClosestCell 返回中心点距离世界坐标 (x, y) 最近的格子
//
// 按行优先顺序遍历全部 N*N 个格子，使用严格小于比较，
// 距离相同时保留先扫描到的格子。结果总在棋盘范围内。
//
// 复杂度 O(N²)。N=10 时只有 100 个格子，仅在松开拖拽时调用一次；
// 棋盘变大时应改为按格子直接取整的空间哈希。
func (g Geometry) ClosestCell(x, y float64) Cell {
	minDistance := math.MaxFloat64
	closest := Cell{}
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			cx, cy := g.GridToWorld(col, row)
			distance := math.Hypot(cx-x, cy-y)
			if distance < minDistance {
				minDistance = distance
				closest = Cell{Col: col, Row: row}
			}
		}
	}
	return closest
}

// IsBelowBoard 判断世界 y 坐标是否位于棋盘下边缘以下（字母托盘区域）
func (g Geometry) IsBelowBoard(y float64) bool {
	return y < -g.Extent()
}
