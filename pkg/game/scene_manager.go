package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 每次调用创建一局新的游戏（重新抽取字母、重新过滤词典）
type SceneFactory func() (Scene, error)

// SceneManager 管理当前活动的场景
// 任意时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	rounds       int
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Rounds 返回已经开始的局数
func (sm *SceneManager) Rounds() int {
	return sm.rounds
}

// NewRound 通过工厂函数开始新的一局
// 创建失败时保留当前场景
func (sm *SceneManager) NewRound() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	scene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建新的一局: %v", err)
		return fmt.Errorf("failed to create scene: %w", err)
	}

	sm.rounds++
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 开始第 %d 局", sm.rounds)
	return nil
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
