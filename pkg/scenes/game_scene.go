// Package scenes 实现一局字母棋盘游戏的场景
package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/config"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/decker502/zeeb/pkg/entities"
	"github.com/decker502/zeeb/pkg/game"
	"github.com/decker502/zeeb/pkg/systems"
	"github.com/decker502/zeeb/pkg/utils"
)

// SceneOptions 创建场景时可注入的依赖
type SceneOptions struct {
	// Rand 字母抽取使用的随机源，为 nil 时以当前时间为种子创建
	Rand *rand.Rand
	// Pointer 指针输入源，为 nil 时使用 ebiten 的鼠标/触摸输入
	Pointer systems.PointerSource
}

// GameScene 一局游戏：棋盘、托盘中的字母块、单词检查与界面
type GameScene struct {
	config   *config.GameConfig
	geometry board.Geometry
	camera   utils.Camera

	// ECS
	entityManager *ecs.EntityManager
	tiles         []ecs.EntityID

	board      *board.Board
	dictionary *game.Dictionary

	dragSystem      *systems.DragSystem
	wordCheckSystem *systems.WordCheckSystem
	inputSystem     *systems.InputSystem
}

// NewGameScene 创建一局新游戏
//
// 初始化顺序：
//  1. 按配置生成字母块（放在托盘中）
//  2. 用场上字母过滤词典
//  3. 创建拖拽、单词检查、输入系统
func NewGameScene(cfg *config.GameConfig, opts SceneOptions) (*GameScene, error) {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	pointer := opts.Pointer
	if pointer == nil {
		resetKey, err := utils.ParseKey(cfg.Input.ResetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid reset key: %w", err)
		}
		pointer = utils.NewPointerReader(resetKey)
	}

	width, height := cfg.WindowSize()
	s := &GameScene{
		config:        cfg,
		geometry:      cfg.Geometry(),
		camera:        utils.NewCamera(0, cfg.CameraY(), width, height),
		entityManager: ecs.NewEntityManager(),
		board:         board.NewBoard(cfg.Board.Size),
	}

	s.tiles = entities.SpawnLetterTiles(s.entityManager, cfg, rng)

	letters := systems.LettersInPlay(s.entityManager)
	dict, err := game.LoadDictionary(cfg.Dictionary.Path, letters, cfg.Dictionary.MinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	s.dictionary = dict

	s.dragSystem = systems.NewDragSystem(s.entityManager, s.board, s.geometry)
	s.wordCheckSystem = systems.NewWordCheckSystem(s.entityManager, s.board, dict, cfg.UnresolvedPolicy())
	s.inputSystem = systems.NewInputSystem(pointer, s.camera, s.dragSystem)

	log.Printf("[GameScene] 新的一局: %d 个字母块, 词典 %d 个单词", len(s.tiles), dict.Len())
	return s, nil
}

// Update 处理输入，棋盘变化后重新检查单词
func (s *GameScene) Update(deltaTime float64) {
	result := s.inputSystem.Update()
	if result.BoardMayHaveChanged() {
		s.wordCheckSystem.Check()
	}
}

// Report 返回最近一次单词检查结果
func (s *GameScene) Report() systems.WordReport {
	return s.wordCheckSystem.LastReport()
}

// Board 返回棋盘
func (s *GameScene) Board() *board.Board {
	return s.board
}

// Dictionary 返回本局过滤后的词典
func (s *GameScene) Dictionary() *game.Dictionary {
	return s.dictionary
}

// Tiles 返回本局全部字母块
func (s *GameScene) Tiles() []ecs.EntityID {
	return s.tiles
}
