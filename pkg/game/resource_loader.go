package game

import (
	"fmt"
	"io"
	"os"

	"github.com/decker502/zeeb/pkg/config"
	"github.com/decker502/zeeb/pkg/embedded"
)

// OpenResource 打开资源文件
//
// 查找顺序：
//  1. "data/" 开头且嵌入资源中存在 → 从嵌入资源读取
//  2. 否则从文件系统读取（允许用户用外部词表、配置覆盖内置版本）
func OpenResource(path string) (io.ReadCloser, error) {
	if embedded.IsEmbeddedPath(path) && embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}

// ReadResource 读取资源文件全部内容，查找顺序同 OpenResource
func ReadResource(path string) ([]byte, error) {
	if embedded.IsEmbeddedPath(path) && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadGameConfig 加载游戏配置
// 嵌入资源中存在时从嵌入资源解析，否则交给 config.LoadGameConfig 从文件系统读取
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if !embedded.IsEmbeddedPath(path) || !embedded.Exists(path) {
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return config.ParseGameConfig(data)
}
