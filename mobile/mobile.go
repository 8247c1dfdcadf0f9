//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，触摸拖拽由 utils.PointerReader 处理。
// 构建前需要把 data/game_config.yaml 与 data/words.txt 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/game_config.yaml data/words.txt mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.zeeb -o build/android/zeeb.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Zeeb.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/zeeb/pkg/app"
	"github.com/decker502/zeeb/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
