package board

import (
	"fmt"
	"strings"
)

// LetterLookup 根据字母块ID查询其字母
//
// 棋盘不持有字母内容，提取单词时由表现层注入此能力。
// 查询失败（实体已不存在、缺少字母组件等）返回 false。
type LetterLookup interface {
	ResolveLetter(tile TileID) (rune, bool)
}

// LetterLookupFunc 让普通函数实现 LetterLookup
type LetterLookupFunc func(tile TileID) (rune, bool)

// ResolveLetter 实现 LetterLookup
func (f LetterLookupFunc) ResolveLetter(tile TileID) (rune, bool) {
	return f(tile)
}

// Direction 单词方向
type Direction int

const (
	// Vertical 列方向（自上而下）
	Vertical Direction = iota
	// Horizontal 行方向（自左向右）
	Horizontal
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// UnresolvedPolicy 决定格子里有字母块但查不到字母时如何处理
type UnresolvedPolicy int

const (
	// UnresolvedSkip 跳过该格子且不截断当前单词：
	// 它既不算字母，也不算空隙，两侧的字母会被拼接在一起
	UnresolvedSkip UnresolvedPolicy = iota
	// UnresolvedAsGap 把该格子当作空格子，截断当前单词
	UnresolvedAsGap
)

// String 返回策略名称（与配置文件中的取值一致）
func (p UnresolvedPolicy) String() string {
	switch p {
	case UnresolvedSkip:
		return "skip"
	case UnresolvedAsGap:
		return "gap"
	default:
		return fmt.Sprintf("UnresolvedPolicy(%d)", int(p))
	}
}

// ParseUnresolvedPolicy 解析配置中的策略名称，空字符串视为 "skip"
func ParseUnresolvedPolicy(s string) (UnresolvedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return UnresolvedSkip, nil
	case "gap":
		return UnresolvedAsGap, nil
	default:
		return UnresolvedSkip, fmt.Errorf("unknown unresolved policy %q (want \"skip\" or \"gap\")", s)
	}
}

// MinWordLength 被视为"单词"的最短连续字母数
const MinWordLength = 2

// Word 棋盘上一段连续字母
type Word struct {
	Text      string
	Direction Direction
	Start     Cell // 第一个字母所在格子
}

// WordTexts 提取单词文本列表
func WordTexts(words []Word) []string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return texts
}

// ExtractWords 使用默认策略 UnresolvedSkip 提取棋盘上的所有单词
func (b *Board) ExtractWords(lookup LetterLookup) []Word {
	return b.ExtractWordsWithPolicy(lookup, UnresolvedSkip)
}

// ExtractWordsWithPolicy 提取棋盘上所有长度 >= 2 的连续字母串
//
// 先按列扫描（列从左到右，每列自上而下），再按行扫描（行从上到下，每行自左向右）。
// 遇到空格子或行/列末尾时结算缓冲区：长度 >= 2 输出为单词，否则丢弃。
// 输出顺序：全部列方向单词在前，行方向单词在后；不去重、不排序。
// 同时属于横竖两个单词的字母块会在两个方向各出现一次。
func (b *Board) ExtractWordsWithPolicy(lookup LetterLookup, policy UnresolvedPolicy) []Word {
	words := make([]Word, 0)
	scan := wordScanner{lookup: lookup, policy: policy}

	for col := 0; col < b.size; col++ {
		scan.begin(Vertical)
		for row := 0; row < b.size; row++ {
			scan.visit(b.cells[row*b.size+col], Cell{Col: col, Row: row}, &words)
		}
		scan.flush(&words)
	}

	for row := 0; row < b.size; row++ {
		scan.begin(Horizontal)
		for col := 0; col < b.size; col++ {
			scan.visit(b.cells[row*b.size+col], Cell{Col: col, Row: row}, &words)
		}
		scan.flush(&words)
	}

	return words
}

// wordScanner 单行/单列扫描时的缓冲区
type wordScanner struct {
	lookup    LetterLookup
	policy    UnresolvedPolicy
	direction Direction
	buf       []rune
	start     Cell
}

func (s *wordScanner) begin(direction Direction) {
	s.direction = direction
	s.buf = s.buf[:0]
}

func (s *wordScanner) visit(tile TileID, cell Cell, words *[]Word) {
	if tile == NoTile {
		s.flush(words)
		return
	}

	letter, ok := s.lookup.ResolveLetter(tile)
	if !ok {
		if s.policy == UnresolvedAsGap {
			s.flush(words)
		}
		return
	}

	if len(s.buf) == 0 {
		s.start = cell
	}
	s.buf = append(s.buf, letter)
}

func (s *wordScanner) flush(words *[]Word) {
	if len(s.buf) >= MinWordLength {
		*words = append(*words, Word{
			Text:      string(s.buf),
			Direction: s.direction,
			Start:     s.start,
		})
	}
	s.buf = s.buf[:0]
}
