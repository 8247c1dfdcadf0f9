package components

// PositionComponent 存储实体中心的世界坐标
// 世界坐标以棋盘中心为原点，y 轴向上
type PositionComponent struct {
	X, Y float64
}
