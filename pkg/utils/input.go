package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerFrame 一帧内的指针与按键状态
// 同时支持鼠标与触摸输入；坐标为屏幕坐标
type PointerFrame struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// Pressed 当前处于按下状态（含本帧刚按下）
	Pressed bool
	// JustReleased 本帧刚松开
	JustReleased bool
	// X, Y 指针位置（松开时为最后一次有效位置）
	X, Y int
	// ResetTriggered 本帧按下了重置键
	ResetTriggered bool
}

// PointerReader 从 ebiten 读取指针状态
//
// 触摸松开的那一帧已经拿不到触摸位置，因此需要记住上一帧的位置。
type PointerReader struct {
	resetKey   ebiten.Key
	lastTouchX int
	lastTouchY int
}

// NewPointerReader 创建指针读取器
func NewPointerReader(resetKey ebiten.Key) *PointerReader {
	return &PointerReader{resetKey: resetKey}
}

// Read 读取当前帧的输入状态（必须在 ebiten 的 Update 中调用）
func (r *PointerReader) Read() PointerFrame {
	frame := PointerFrame{
		ResetTriggered: inpututil.IsKeyJustPressed(r.resetKey),
	}

	// 优先检查触摸输入（移动设备）
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		frame.JustReleased = true
		frame.X, frame.Y = r.lastTouchX, r.lastTouchY
		return frame
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		r.lastTouchX, r.lastTouchY = x, y
		frame.Pressed = true
		frame.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		frame.X, frame.Y = x, y
		return frame
	}

	// 其次检查鼠标输入（桌面设备）
	frame.X, frame.Y = ebiten.CursorPosition()
	frame.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}

// ParseKey 将按键名称（如 "R"、"Backspace"、"F5"）解析为 ebiten.Key，大小写不敏感
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key name %q: %w", name, err)
	}
	return key, nil
}
