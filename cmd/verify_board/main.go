// verify_board 在命令行中检查一个棋盘布局：提取单词、查词典、检查连通性
//
// 用法:
//
//	go run ./cmd/verify_board -layout data/layouts/hat_cat.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/decker502/zeeb/pkg/board"
	"github.com/decker502/zeeb/pkg/config"
	"github.com/decker502/zeeb/pkg/ecs"
	"github.com/decker502/zeeb/pkg/game"
	"github.com/decker502/zeeb/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	layoutPath = flag.String("layout", "data/layouts/hat_cat.yaml", "棋盘布局文件")
	configPath = flag.String("config", config.DefaultGameConfigPath, "游戏配置文件路径")
	wordsPath  = flag.String("words", "", "词表文件路径（覆盖配置中的 dictionary.path）")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "警告: 无法加载 .env: %v\n", err)
	}
	if *wordsPath == "" {
		*wordsPath = os.Getenv("ZEEB_WORDS")
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	report, err := run(*configPath, *wordsPath, *layoutPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(2)
	}

	for _, w := range report.Words {
		fmt.Printf("%-10s %-10s %s\n", w.Word.Text, w.Word.Direction, validity(w.Valid))
	}
	fmt.Printf("tiles: %d, words: %d, valid: %d, connected: %v\n",
		report.TilesOnBoard, len(report.Words), report.ValidCount(), report.Contiguous)

	if !report.AllValid() {
		fmt.Println("FAIL")
		os.Exit(1)
	}
	fmt.Println("OK")
}

// run 加载配置、布局与词典，把布局放到棋盘上并检查单词
func run(configPath, wordsPath, layoutPath string) (systems.WordReport, error) {
	cfg, err := game.LoadGameConfig(configPath)
	if err != nil {
		return systems.WordReport{}, err
	}
	if wordsPath != "" {
		cfg.Dictionary.Path = wordsPath
	}

	layout, err := LoadLayout(layoutPath)
	if err != nil {
		return systems.WordReport{}, err
	}

	dict, err := game.LoadDictionary(cfg.Dictionary.Path, layout.Letters(), cfg.Dictionary.MinLength)
	if err != nil {
		return systems.WordReport{}, err
	}

	em := ecs.NewEntityManager()
	b := board.NewBoard(cfg.Board.Size)
	if err := layout.Place(em, b, cfg.Geometry()); err != nil {
		return systems.WordReport{}, err
	}

	return systems.NewWordCheckSystem(em, b, dict, cfg.UnresolvedPolicy()).Check(), nil
}

func validity(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
