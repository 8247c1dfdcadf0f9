//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需先把 data/ 下的文件复制到 mobile/data/。
package mobile

import "embed"

//go:embed data/game_config.yaml data/words.txt
var dataFS embed.FS
