package game

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"unicode/utf8"
)

// Dictionary 有效单词集合
//
// 开局时根据场上字母构建一次，之后只读。
// 单词统一以小写存储，与字母块组件中的字母一致。
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary 直接用给定单词创建词典（不做过滤）
// 主要用于测试和命令行工具
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// BuildDictionary 从词表构建只包含"可拼出"单词的词典
//
// 参数：
//   - r: 词表，每行一个单词
//   - letters: 场上所有字母块的字母（小写）
//   - minLength: 有效单词的最短长度
//
// 过滤规则：
//   - 单词的每个字符都必须出现在 letters 中（不考虑次数）
//   - 单词长度 >= minLength
//
// 词表按原样比较，大写开头的专有名词因此不会被收录。
func BuildDictionary(r io.Reader, letters []rune, minLength int) (*Dictionary, error) {
	inPlay := make(map[rune]struct{}, len(letters))
	for _, l := range letters {
		inPlay[l] = struct{}{}
	}

	d := &Dictionary{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	total := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		total++

		if utf8.RuneCountInString(word) < minLength {
			continue
		}
		if !spelledFrom(word, inPlay) {
			continue
		}
		d.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	log.Printf("[Dictionary] %d/%d words usable with letters %q", len(d.words), total, string(letters))
	return d, nil
}

// LoadDictionary 打开词表文件并构建词典
// "data/" 开头的路径优先从嵌入资源读取
func LoadDictionary(path string, letters []rune, minLength int) (*Dictionary, error) {
	f, err := OpenResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	d, err := BuildDictionary(f, letters, minLength)
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary from %s: %w", path, err)
	}
	return d, nil
}

// spelledFrom 判断单词是否只由给定字母组成
func spelledFrom(word string, letters map[rune]struct{}) bool {
	for _, r := range word {
		if _, ok := letters[r]; !ok {
			return false
		}
	}
	return true
}

// Contains 检查单词是否有效（大小写不敏感）
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len 返回词典中的单词数量
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words 返回按字母序排列的全部单词
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
