package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/decker502/zeeb/pkg/board"
)

// 默认参数
// 与原型版本一致：10x10 棋盘，格子边长 50，托盘每行 10 个字母块
const (
	DefaultBoardSize         = 10
	DefaultTileSize          = 50.0
	DefaultTrayPerRow        = 10
	DefaultMinWordLength     = 3
	DefaultDictionaryPath    = "data/words.txt"
	DefaultWindowTitle       = "Zeeb"
	DefaultResetKey          = "R"
	DefaultNewRoundKey       = "N"
	DefaultGameConfigPath    = "data/game_config.yaml"
	DefaultUnresolvedPolicy  = "skip"
	DefaultTrayRowsBelowGrid = 2
)

// DefaultLetterRows 每个字母块从对应的一组字母中随机抽取一个
var DefaultLetterRows = []string{
	"MMLLBY", "VFGKPP", "HHNNRR", "DFRLLW", "RRDLGG", "XKBSZN", "WHHTTP", "CCBTJD", "CCMTTS",
	"OIINNY", "AEIOUU", "AAEEOO",
}

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏配置
//
// 配置文件位置: data/game_config.yaml
type GameConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Tray       TrayConfig       `yaml:"tray"`
	Letters    LettersConfig    `yaml:"letters"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Window     WindowConfig     `yaml:"window"`
	Input      InputConfig      `yaml:"input"`
	Words      WordsConfig      `yaml:"words"`
}

// BoardConfig 棋盘参数
type BoardConfig struct {
	// Size 棋盘边长（格子数）
	Size int `yaml:"size"`
	// TileSize 格子边长（像素/世界单位）
	TileSize float64 `yaml:"tileSize"`
}

// TrayConfig 棋盘下方字母托盘
type TrayConfig struct {
	// PerRow 托盘每行字母块数量
	PerRow int `yaml:"perRow"`
	// Rows 托盘区域高度（以格子为单位），决定窗口高度
	Rows int `yaml:"rows"`
}

// LettersConfig 字母块配置
type LettersConfig struct {
	// Rows 每一项生成一个字母块，字母从该字符串中随机抽取
	Rows []string `yaml:"rows"`
}

// DictionaryConfig 词典配置
type DictionaryConfig struct {
	// Path 词表路径，每行一个单词；"data/" 开头的路径优先从嵌入资源读取
	Path string `yaml:"path"`
	// MinLength 有效单词的最短长度
	MinLength int `yaml:"minLength"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title string `yaml:"title"`
}

// InputConfig 输入配置
type InputConfig struct {
	// ResetKey 重置按键名称，如 "R"
	ResetKey string `yaml:"resetKey"`
	// NewRoundKey 重新抽取字母开始新一局的按键名称
	NewRoundKey string `yaml:"newRoundKey"`
}

// WordsConfig 单词提取配置
type WordsConfig struct {
	// UnresolvedPolicy 查不到字母时的处理方式: "skip" 或 "gap"
	UnresolvedPolicy string `yaml:"unresolvedPolicy"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	rows := make([]string, len(DefaultLetterRows))
	copy(rows, DefaultLetterRows)
	return &GameConfig{
		Board:      BoardConfig{Size: DefaultBoardSize, TileSize: DefaultTileSize},
		Tray:       TrayConfig{PerRow: DefaultTrayPerRow, Rows: DefaultTrayRowsBelowGrid},
		Letters:    LettersConfig{Rows: rows},
		Dictionary: DictionaryConfig{Path: DefaultDictionaryPath, MinLength: DefaultMinWordLength},
		Window:     WindowConfig{Title: DefaultWindowTitle},
		Input:      InputConfig{ResetKey: DefaultResetKey, NewRoundKey: DefaultNewRoundKey},
		Words:      WordsConfig{UnresolvedPolicy: DefaultUnresolvedPolicy},
	}
}

// LoadGameConfig 从文件系统加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game_config.yaml"）
//
// 返回:
//   - *GameConfig: 填充默认值并校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置内容
// 文件中未出现的字段保持默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 棋盘边长与格子边长为正数
//   - 托盘每行数量为正数，且不超过棋盘边长（托盘各列与棋盘列对齐）
//   - 字母块排满后的托盘行数不超过 tray.rows（否则字母块会生成在窗口之外）
//   - 至少一个字母块，且每组字母只包含 ASCII 字母
//   - 最短单词长度 >= 2
//   - 单词提取策略可识别
func (c *GameConfig) Validate() error {
	if c.Board.Size <= 0 {
		return fmt.Errorf("%w: board.size must be > 0, got %d", ErrInvalidConfig, c.Board.Size)
	}
	if c.Board.TileSize <= 0 {
		return fmt.Errorf("%w: board.tileSize must be > 0, got %.1f", ErrInvalidConfig, c.Board.TileSize)
	}
	if c.Tray.PerRow <= 0 {
		return fmt.Errorf("%w: tray.perRow must be > 0, got %d", ErrInvalidConfig, c.Tray.PerRow)
	}
	if c.Tray.Rows < 0 {
		return fmt.Errorf("%w: tray.rows must be >= 0, got %d", ErrInvalidConfig, c.Tray.Rows)
	}
	if len(c.Letters.Rows) == 0 {
		return fmt.Errorf("%w: letters.rows must not be empty", ErrInvalidConfig)
	}
	for i, group := range c.Letters.Rows {
		if group == "" {
			return fmt.Errorf("%w: letters.rows[%d] is empty", ErrInvalidConfig, i)
		}
		for _, r := range group {
			if r > unicode.MaxASCII || !unicode.IsLetter(r) {
				return fmt.Errorf("%w: letters.rows[%d] contains non-ASCII-letter %q", ErrInvalidConfig, i, r)
			}
		}
	}
	if c.Tray.PerRow > c.Board.Size {
		return fmt.Errorf("%w: tray.perRow (%d) must not exceed board.size (%d)",
			ErrInvalidConfig, c.Tray.PerRow, c.Board.Size)
	}
	if need := (len(c.Letters.Rows) + c.Tray.PerRow - 1) / c.Tray.PerRow; need > c.Tray.Rows {
		return fmt.Errorf("%w: %d letter tiles need %d tray rows at tray.perRow %d, but tray.rows is %d",
			ErrInvalidConfig, len(c.Letters.Rows), need, c.Tray.PerRow, c.Tray.Rows)
	}
	if c.Dictionary.MinLength < board.MinWordLength {
		return fmt.Errorf("%w: dictionary.minLength must be >= %d, got %d",
			ErrInvalidConfig, board.MinWordLength, c.Dictionary.MinLength)
	}
	if strings.TrimSpace(c.Input.ResetKey) == "" {
		return fmt.Errorf("%w: input.resetKey must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Input.NewRoundKey) == "" {
		return fmt.Errorf("%w: input.newRoundKey must not be empty", ErrInvalidConfig)
	}
	if _, err := board.ParseUnresolvedPolicy(c.Words.UnresolvedPolicy); err != nil {
		return fmt.Errorf("%w: words.unresolvedPolicy: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Geometry 返回棋盘几何参数
func (c *GameConfig) Geometry() board.Geometry {
	return board.NewGeometry(c.Board.Size, c.Board.TileSize)
}

// UnresolvedPolicy 返回解析后的单词提取策略（Validate 已保证可解析）
func (c *GameConfig) UnresolvedPolicy() board.UnresolvedPolicy {
	policy, _ := board.ParseUnresolvedPolicy(c.Words.UnresolvedPolicy)
	return policy
}

// WindowSize 返回窗口尺寸（像素）
// 宽度为棋盘宽度，高度为棋盘高度加上托盘区域
func (c *GameConfig) WindowSize() (width, height int) {
	boardPixels := float64(c.Board.Size) * c.Board.TileSize
	width = int(boardPixels)
	height = int(boardPixels + float64(c.Tray.Rows)*c.Board.TileSize)
	return width, height
}

// CameraY 返回摄像机中心的世界 y 坐标
// 摄像机下移托盘高度的一半，让棋盘与托盘一起居中
func (c *GameConfig) CameraY() float64 {
	return -float64(c.Tray.Rows) * c.Board.TileSize / 2
}
