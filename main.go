package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/decker502/zeeb/pkg/app"
	"github.com/decker502/zeeb/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	wordsPath  = flag.String("words", "", "词表文件路径（覆盖配置中的 dictionary.path）")
	envFile    = flag.String("env", ".env", "环境变量文件（不存在时忽略）")
)

func main() {
	flag.Parse()

	// .env 只补充未设置的环境变量，文件不存在不是错误
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("警告: 无法加载 %s: %v", *envFile, err)
	}

	cfg := app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		WordsPath:  *wordsPath,
	}
	applyEnv(&cfg)

	embedded.Init(dataFS)

	game, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := game.GameConfig().WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.GameConfig().Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// applyEnv 用 ZEEB_* 环境变量补充命令行未指定的选项
func applyEnv(cfg *app.Config) {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = os.Getenv("ZEEB_CONFIG")
	}
	if cfg.WordsPath == "" {
		cfg.WordsPath = os.Getenv("ZEEB_WORDS")
	}
	if !cfg.Verbose {
		if v, err := strconv.ParseBool(os.Getenv("ZEEB_VERBOSE")); err == nil {
			cfg.Verbose = v
		}
	}
}
