package components

// DraggableComponent 可拖拽字母块的状态
//
// 状态机：Idle（IsDragging=false） <-> Dragging（IsDragging=true）
// 所有坐标均为世界坐标。
type DraggableComponent struct {
	// IsDragging 是否正在被拖拽
	IsDragging bool

	// LastX, LastY 最后一次确认的位置
	// 在棋盘上时是所在格子的中心；在托盘区域时是松开时的落点。
	// 落点被占用时字母块会弹回到这里。
	LastX, LastY float64

	// IsOnBoard 是否放置在棋盘格子上
	IsOnBoard bool

	// SpawnX, SpawnY 开局时在托盘中的位置，重置时恢复到这里
	SpawnX, SpawnY float64
}
