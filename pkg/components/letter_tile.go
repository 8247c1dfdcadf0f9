package components

// LetterTileComponent 标识字母块实体并保存其字母
//
// 字母以小写形式存储（与词典一致），绘制时转为大写。
// 棋盘只记录实体ID，提取单词时通过此组件查询字母。
type LetterTileComponent struct {
	Letter rune
}
