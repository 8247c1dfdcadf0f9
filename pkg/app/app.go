// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包中提取出来：加载配置、创建场景管理器、开始第一局。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/zeeb/pkg/config"
	"github.com/decker502/zeeb/pkg/game"
	"github.com/decker502/zeeb/pkg/scenes"
	"github.com/decker502/zeeb/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用内置的 data/game_config.yaml
	ConfigPath string
	// WordsPath 词表路径，非空时覆盖配置文件中的 dictionary.path
	WordsPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameConfig   *config.GameConfig
	newRoundKey  ebiten.Key
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, err
	}

	newRoundKey, err := utils.ParseKey(gameConfig.Input.NewRoundKey)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(gameConfig, scenes.SceneOptions{})
	})
	if err := sceneManager.NewRound(); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	width, height := gameConfig.WindowSize()
	log.Printf("[App] 窗口 %dx%d, 棋盘 %dx%d", width, height, gameConfig.Board.Size, gameConfig.Board.Size)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		newRoundKey:  newRoundKey,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 按启动配置加载游戏配置并应用词表覆盖
func LoadConfig(cfg Config) (*config.GameConfig, error) {
	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultGameConfigPath
	}

	gameConfig, err := game.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.WordsPath != "" {
		gameConfig.Dictionary.Path = cfg.WordsPath
	}
	log.Printf("[Config] 加载配置: %s, 词表: %s", path, gameConfig.Dictionary.Path)
	return gameConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 新的一局：重新抽取字母
	if inpututil.IsKeyJustPressed(a.newRoundKey) {
		if err := a.sceneManager.NewRound(); err != nil {
			log.Printf("[App] 无法开始新的一局: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸（棋盘加托盘）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.WindowSize()
}

// GameConfig 返回当前游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
