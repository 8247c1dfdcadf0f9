// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供屏幕坐标与世界坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：以棋盘中心为原点，y 轴向上（棋盘、字母块、拖拽逻辑都使用世界坐标）
//   - **屏幕坐标**：以窗口左上角为原点，y 轴向下（ebiten 输入与绘制使用屏幕坐标）
//
// # 核心转换公式
//
//	worldX =  (screenX - ScreenWidth/2)  + CenterX
//	worldY = -(screenY - ScreenHeight/2) + CenterY
//
// 其中 (CenterX, CenterY) 是摄像机中心的世界坐标。
package utils

// Camera 二维正交摄像机
type Camera struct {
	// CenterX, CenterY 摄像机中心（窗口中心）对应的世界坐标
	CenterX, CenterY float64
	// ScreenWidth, ScreenHeight 逻辑屏幕尺寸（像素）
	ScreenWidth, ScreenHeight int
}

// NewCamera 创建摄像机
func NewCamera(centerX, centerY float64, screenWidth, screenHeight int) Camera {
	return Camera{
		CenterX:      centerX,
		CenterY:      centerY,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// ScreenToWorld 将屏幕坐标（像素）转换为世界坐标
func (c Camera) ScreenToWorld(screenX, screenY int) (worldX, worldY float64) {
	worldX = float64(screenX) - float64(c.ScreenWidth)/2 + c.CenterX
	worldY = -(float64(screenY) - float64(c.ScreenHeight)/2) + c.CenterY
	return worldX, worldY
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (c Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	screenX = worldX - c.CenterX + float64(c.ScreenWidth)/2
	screenY = -(worldY - c.CenterY) + float64(c.ScreenHeight)/2
	return screenX, screenY
}

// InViewport 检查屏幕坐标是否位于窗口内
// 窗口外的指针位置无法换算出有效的世界坐标，调用方应跳过本帧
func (c Camera) InViewport(screenX, screenY int) bool {
	return screenX >= 0 && screenX < c.ScreenWidth && screenY >= 0 && screenY < c.ScreenHeight
}
