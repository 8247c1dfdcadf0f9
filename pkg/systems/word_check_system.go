package systems

import (
	"fmt"
	"log"
	"strings"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/ecs"
)

// WordValidator 判断单词是否有效（由词典实现）
type WordValidator interface {
	Contains(word string) bool
}

// WordResult 单个单词及其校验结果
type WordResult struct {
	Word  board.Word
	Valid bool
}

// String 返回日志格式，如 "Word: hat - Valid!"
func (r WordResult) String() string {
	if r.Valid {
		return fmt.Sprintf("Word: %s - Valid!", r.Word.Text)
	}
	return fmt.Sprintf("Word: %s", r.Word.Text)
}

// WordReport 一次棋盘检查的结果
type WordReport struct {
	Words []WordResult
	// Contiguous 棋盘上的字母块是否连成一片
	Contiguous bool
	// TilesOnBoard 棋盘上的字母块数量
	TilesOnBoard int
}

// ValidCount 返回有效单词数量
func (r WordReport) ValidCount() int {
	n := 0
	for _, w := range r.Words {
		if w.Valid {
			n++
		}
	}
	return n
}

// AllValid 棋盘上至少有一个单词、所有单词都有效且字母块连成一片
func (r WordReport) AllValid() bool {
	return len(r.Words) > 0 && r.ValidCount() == len(r.Words) && r.Contiguous
}

// WordCheckSystem 提取棋盘上的单词并用词典校验
//
// 每次棋盘发生变化（放置、移走、重置）后调用 Check，
// 结果保存在 LastReport 中供界面显示。
type WordCheckSystem struct {
	board     *board.Board
	lookup    board.LetterLookup
	validator WordValidator
	policy    board.UnresolvedPolicy

	lastReport WordReport
}

// NewWordCheckSystem 创建单词检查系统
// 参数:
//   - em: EntityManager 实例，用于查询字母块的字母
//   - b: 棋盘
//   - validator: 词典
//   - policy: 查不到字母时的处理策略
func NewWordCheckSystem(em *ecs.EntityManager, b *board.Board, validator WordValidator, policy board.UnresolvedPolicy) *WordCheckSystem {
	return &WordCheckSystem{
		board:      b,
		lookup:     NewEntityLetterLookup(em),
		validator:  validator,
		policy:     policy,
		lastReport: WordReport{Contiguous: true},
	}
}

// Check 提取并校验当前棋盘上的所有单词
func (s *WordCheckSystem) Check() WordReport {
	words := s.board.ExtractWordsWithPolicy(s.lookup, s.policy)

	report := WordReport{
		Words:        make([]WordResult, 0, len(words)),
		Contiguous:   s.board.IsContiguous(),
		TilesOnBoard: s.board.OccupiedCount(),
	}
	for _, w := range words {
		result := WordResult{Word: w, Valid: s.validator.Contains(w.Text)}
		report.Words = append(report.Words, result)
		log.Printf("[WordCheckSystem] %s", result)
	}
	if !report.Contiguous {
		log.Printf("[WordCheckSystem] 棋盘上的字母块没有连成一片")
	}

	s.lastReport = report
	return report
}

// LastReport 返回最近一次检查结果
func (s *WordCheckSystem) LastReport() WordReport {
	return s.lastReport
}

// Summary 返回界面上显示的多行文本（单词大写）
func (r WordReport) Summary() []string {
	lines := make([]string, 0, len(r.Words)+1)
	for _, w := range r.Words {
		mark := "  "
		if w.Valid {
			mark = "OK"
		}
		lines = append(lines, fmt.Sprintf("%s %s", mark, strings.ToUpper(w.Word.Text)))
	}
	if r.TilesOnBoard > 0 && !r.Contiguous {
		lines = append(lines, "(not connected)")
	}
	return lines
}
