package systems

import (
	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/components"
	"github.com/decker502/zeeb/pkg/ecs"
)

// EntityLetterLookup 通过 LetterTileComponent 查询字母块的字母
// 实现 board.LetterLookup，把棋盘与实体存储解耦
type EntityLetterLookup struct {
	entityManager *ecs.EntityManager
}

// NewEntityLetterLookup 创建字母查询器
func NewEntityLetterLookup(em *ecs.EntityManager) *EntityLetterLookup {
	return &EntityLetterLookup{entityManager: em}
}

// ResolveLetter 实现 board.LetterLookup
func (l *EntityLetterLookup) ResolveLetter(tile board.TileID) (rune, bool) {
	comp, ok := ecs.GetComponent[*components.LetterTileComponent](l.entityManager, tile)
	if !ok {
		return 0, false
	}
	return comp.Letter, true
}

// LettersInPlay 返回场上全部字母块的字母（按实体ID顺序）
// 用于构建"可拼出"的词典
func LettersInPlay(em *ecs.EntityManager) []rune {
	ids := ecs.GetEntitiesWith1[*components.LetterTileComponent](em)
	letters := make([]rune, 0, len(ids))
	for _, id := range ids {
		comp, _ := ecs.GetComponent[*components.LetterTileComponent](em, id)
		letters = append(letters, comp.Letter)
	}
	return letters
}
