package main

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/decker502/zeeb/pkg/entities"
)

// Layout 棋盘布局文件
//
//	tiles:
//	  - {letter: H, col: 3, row: 0}
type Layout struct {
	Tiles []LayoutTile `yaml:"tiles"`
}

// LayoutTile 布局中的一个字母块
type LayoutTile struct {
	Letter string `yaml:"letter"`
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
}

// LoadLayout 读取并解析布局文件
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout 解析布局并检查每个字母块都是单个 ASCII 字母
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	for i, tile := range layout.Tiles {
		r, size := utf8.DecodeRuneInString(tile.Letter)
		if size == 0 || size != len(tile.Letter) || r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return nil, fmt.Errorf("tiles[%d]: letter must be a single ASCII letter, got %q", i, tile.Letter)
		}
	}
	return &layout, nil
}

// Letters 返回布局中全部字母（小写）
func (l *Layout) Letters() []rune {
	letters := make([]rune, 0, len(l.Tiles))
	for _, tile := range l.Tiles {
		r, _ := utf8.DecodeRuneInString(tile.Letter)
		letters = append(letters, unicode.ToLower(r))
	}
	return letters
}

// Place 为每个字母块创建实体并放到棋盘上
// 越界或重复占用同一格子时返回错误
func (l *Layout) Place(em *ecs.EntityManager, b *board.Board, g board.Geometry) error {
	for i, tile := range l.Tiles {
		if !g.Contains(tile.Col, tile.Row) {
			return fmt.Errorf("tiles[%d]: cell (%d,%d) is outside the %dx%d board", i, tile.Col, tile.Row, b.Size(), b.Size())
		}
		if occupant, ok := b.Occupant(tile.Col, tile.Row); ok {
			return fmt.Errorf("tiles[%d]: cell (%d,%d) already holds tile %d", i, tile.Col, tile.Row, occupant)
		}

		r, _ := utf8.DecodeRuneInString(tile.Letter)
		x, y := g.GridToWorld(tile.Col, tile.Row)
		id := entities.NewLetterTileEntity(em, r, x, y)
		b.PlaceTile(tile.Col, tile.Row, id)
	}
	return nil
}
