package systems

import (
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/decker502/zeeb/pkg/entities"
)

// mapValidator 测试用词典
type mapValidator map[string]bool

func (m mapValidator) Contains(word string) bool {
	return m[strings.ToLower(word)]
}

// placeWord 在棋盘上从 (col,row) 开始放置一串字母块
func placeWord(em *ecs.EntityManager, b *board.Board, word string, col, row int, dir board.Direction) {
	for i, r := range word {
		id := entities.NewLetterTileEntity(em, r, 0, -300)
		if dir == board.Vertical {
			b.PlaceTile(col, row+i, id)
		} else {
			b.PlaceTile(col+i, row, id)
		}
	}
}

func TestWordCheckInitialReport(t *testing.T) {
	s := NewWordCheckSystem(ecs.NewEntityManager(), board.NewBoard(10), mapValidator{}, board.UnresolvedSkip)

	report := s.LastReport()
	if len(report.Words) != 0 || !report.Contiguous || report.TilesOnBoard != 0 {
		t.Errorf("initial report = %+v, want empty and contiguous", report)
	}
	if report.AllValid() {
		t.Error("an empty board has no valid words")
	}
	if lines := report.Summary(); len(lines) != 0 {
		t.Errorf("Summary() = %v, want empty", lines)
	}
}

func TestWordCheckValidWord(t *testing.T) {
	em := ecs.NewEntityManager()
	b := board.NewBoard(10)
	placeWord(em, b, "hat", 2, 2, board.Vertical)

	s := NewWordCheckSystem(em, b, mapValidator{"hat": true}, board.UnresolvedSkip)
	report := s.Check()

	if len(report.Words) != 1 {
		t.Fatalf("got %d words, want 1", len(report.Words))
	}
	w := report.Words[0]
	if w.Word.Text != "hat" || !w.Valid || w.Word.Direction != board.Vertical {
		t.Errorf("word = %+v, want valid vertical hat", w)
	}
	if w.String() != "Word: hat - Valid!" {
		t.Errorf("String() = %q", w.String())
	}
	if !report.Contiguous || report.TilesOnBoard != 3 || !report.AllValid() {
		t.Errorf("report = %+v, want contiguous, 3 tiles, all valid", report)
	}
	if !reflect.DeepEqual(report.Summary(), []string{"OK HAT"}) {
		t.Errorf("Summary() = %q", report.Summary())
	}
	if !reflect.DeepEqual(s.LastReport(), report) {
		t.Error("LastReport() must return the latest Check() result")
	}
}

func TestWordCheckInvalidWord(t *testing.T) {
	em := ecs.NewEntityManager()
	b := board.NewBoard(10)
	placeWord(em, b, "zq", 0, 0, board.Horizontal)

	report := NewWordCheckSystem(em, b, mapValidator{"hat": true}, board.UnresolvedSkip).Check()

	if len(report.Words) != 1 || report.Words[0].Valid {
		t.Fatalf("words = %+v, want one invalid word", report.Words)
	}
	if report.Words[0].String() != "Word: zq" {
		t.Errorf("String() = %q", report.Words[0].String())
	}
	if report.ValidCount() != 0 || report.AllValid() {
		t.Error("invalid word must not count as valid")
	}
	if !reflect.DeepEqual(report.Summary(), []string{"   ZQ"}) {
		t.Errorf("Summary() = %q", report.Summary())
	}
}

func TestWordCheckNotContiguous(t *testing.T) {
	em := ecs.NewEntityManager()
	b := board.NewBoard(10)
	placeWord(em, b, "hat", 2, 2, board.Vertical)
	placeWord(em, b, "x", 7, 7, board.Horizontal)

	report := NewWordCheckSystem(em, b, mapValidator{"hat": true}, board.UnresolvedSkip).Check()

	if report.Contiguous {
		t.Error("isolated tile must break contiguity")
	}
	if report.AllValid() {
		t.Error("a disconnected board is not all valid")
	}
	want := []string{"OK HAT", "(not connected)"}
	if !reflect.DeepEqual(report.Summary(), want) {
		t.Errorf("Summary() = %q, want %q", report.Summary(), want)
	}
}

// TestWordCheckUnresolvedPolicy 查不到字母的字母块
func TestWordCheckUnresolvedPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy board.UnresolvedPolicy
		want   []string
	}{
		{"跳过", board.UnresolvedSkip, []string{"ht"}},
		{"视为空格", board.UnresolvedAsGap, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			b := board.NewBoard(10)
			placeWord(em, b, "h", 0, 0, board.Horizontal)
			b.PlaceTile(1, 0, em.CreateEntity()) // 没有字母组件
			placeWord(em, b, "t", 2, 0, board.Horizontal)

			report := NewWordCheckSystem(em, b, mapValidator{}, tt.policy).Check()

			got := []string{}
			for _, w := range report.Words {
				got = append(got, w.Word.Text)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("words = %v, want %v", got, tt.want)
			}
			if report.TilesOnBoard != 3 {
				t.Errorf("TilesOnBoard = %d, want 3", report.TilesOnBoard)
			}
		})
	}
}

func TestLettersInPlay(t *testing.T) {
	em := ecs.NewEntityManager()
	for _, r := range "CaTs" {
		entities.NewLetterTileEntity(em, r, 0, 0)
	}
	em.CreateEntity() // 非字母块实体

	got := LettersInPlay(em)
	want := []rune{'c', 'a', 't', 's'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LettersInPlay() = %q, want %q", string(got), string(want))
	}

	lookup := NewEntityLetterLookup(em)
	if r, ok := lookup.ResolveLetter(1); !ok || r != 'c' {
		t.Errorf("ResolveLetter(1) = (%q,%v), want ('c',true)", r, ok)
	}
	if _, ok := lookup.ResolveLetter(5); ok {
		t.Error("entity without a letter must not resolve")
	}
	if _, ok := lookup.ResolveLetter(99); ok {
		t.Error("unknown entity must not resolve")
	}
}
