package systems

import (
	"log"

	"github.com/decker502/zeeb/pkg/utils"
)

// PointerSource 提供每帧的指针状态
// 运行时由 utils.PointerReader 实现，测试中可注入脚本化的输入
type PointerSource interface {
	Read() utils.PointerFrame
}

// PointerSourceFunc 让普通函数实现 PointerSource
type PointerSourceFunc func() utils.PointerFrame

// Read 实现 PointerSource
func (f PointerSourceFunc) Read() utils.PointerFrame {
	return f()
}

// InputResult 一帧输入处理的结果
type InputResult struct {
	// Released 本帧结束了一次拖拽
	Released bool
	// Placement 结束拖拽时的放置结果
	Placement PlacementResult
	// Reset 本帧触发了重置
	Reset bool
}

// BoardMayHaveChanged 本帧之后是否需要重新检查单词
func (r InputResult) BoardMayHaveChanged() bool {
	return r.Reset || r.Released
}

// InputSystem 把屏幕坐标的指针输入转换为世界坐标，驱动拖拽控制器
type InputSystem struct {
	source PointerSource
	camera utils.Camera
	drag   *DragSystem
}

// NewInputSystem 创建输入系统
func NewInputSystem(source PointerSource, camera utils.Camera, drag *DragSystem) *InputSystem {
	return &InputSystem{
		source: source,
		camera: camera,
		drag:   drag,
	}
}

// Update 处理一帧输入
//
// 处理顺序：
//  1. 重置键：取消拖拽并重置整局，本帧不再处理指针
//  2. 指针不在窗口内：无法换算世界坐标，跳过本帧
//  3. 按下 → 开始拖拽；按住 → 跟随；不再按住 → 结算放置
//
// 指针在窗口外松开时本帧被跳过，拖拽会在指针回到窗口后的第一帧结算。
func (s *InputSystem) Update() InputResult {
	frame := s.source.Read()

	if frame.ResetTriggered {
		s.drag.Reset()
		log.Printf("[InputSystem] 重置键按下")
		return InputResult{Reset: true}
	}

	if !s.camera.InViewport(frame.X, frame.Y) {
		return InputResult{}
	}
	worldX, worldY := s.camera.ScreenToWorld(frame.X, frame.Y)

	if frame.JustPressed {
		s.drag.HandlePress(worldX, worldY)
	}

	if _, dragging := s.drag.DraggingTile(); !dragging {
		return InputResult{}
	}

	if frame.Pressed && !frame.JustReleased {
		s.drag.HandleMove(worldX, worldY)
		return InputResult{}
	}

	placement := s.drag.HandleRelease(worldX, worldY)
	return InputResult{Released: true, Placement: placement}
}
