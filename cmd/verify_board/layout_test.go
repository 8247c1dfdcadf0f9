package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/ecs"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     string
		wantLetters string
	}{
		{"正常", "tiles:\n  - {letter: H, col: 0, row: 0}\n  - {letter: i, col: 1, row: 0}\n", "", "hi"},
		{"空布局", "tiles: []\n", "", ""},
		{"多个字母", "tiles:\n  - {letter: AB, col: 0, row: 0}\n", "tiles[0]", ""},
		{"空字母", "tiles:\n  - {letter: \"\", col: 0, row: 0}\n", "tiles[0]", ""},
		{"数字", "tiles:\n  - {letter: A, col: 0, row: 0}\n  - {letter: \"7\", col: 1, row: 0}\n", "tiles[1]", ""},
		{"格式错误", "tiles: [\n", "failed to parse", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ParseLayout([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := string(layout.Letters()); got != tt.wantLetters {
				t.Errorf("Letters() = %q, want %q", got, tt.wantLetters)
			}
		})
	}
}

func TestLayoutPlace(t *testing.T) {
	tests := []struct {
		name    string
		tiles   []LayoutTile
		wantErr string
	}{
		{"正常", []LayoutTile{{"H", 0, 0}, {"I", 1, 0}}, ""},
		{"越界", []LayoutTile{{"H", 5, 0}}, "outside"},
		{"重复占用", []LayoutTile{{"H", 1, 1}, {"I", 1, 1}}, "already holds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			b := board.NewBoard(5)
			layout := &Layout{Tiles: tt.tiles}

			err := layout.Place(em, b, board.NewGeometry(5, 50))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.OccupiedCount() != len(tt.tiles) {
				t.Errorf("OccupiedCount = %d, want %d", b.OccupiedCount(), len(tt.tiles))
			}
		})
	}
}

// TestRunSampleLayout 使用仓库自带的布局、配置与词表
func TestRunSampleLayout(t *testing.T) {
	report, err := run("../../data/game_config.yaml", "../../data/words.txt", "../../data/layouts/hat_cat.yaml")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var words []string
	for _, w := range report.Words {
		words = append(words, w.Word.Text)
	}
	if !reflect.DeepEqual(words, []string{"hat", "cat"}) {
		t.Errorf("words = %v, want [hat cat]", words)
	}
	if !report.AllValid() {
		t.Errorf("report = %+v, want all valid", report)
	}
}
