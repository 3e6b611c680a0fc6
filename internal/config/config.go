package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Roots       RootsConfig       `yaml:"roots"`
	Compression CompressionConfig `yaml:"compression"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// RootsConfig は配信対象となる2つのドキュメントルートの設定
type RootsConfig struct {
	ExamplesDir string `yaml:"examples_dir"` // 主ルート（サンプルページ）
	DistDir     string `yaml:"dist_dir"`     // 副ルート（ビルド成果物、/dist/ で参照）
	EntryFile   string `yaml:"entry_file"`   // 主ルート直下に必須のエントリーファイル
}

// CompressionConfig は配信時の圧縮設定
type CompressionConfig struct {
	// Brotli圧縮の有効/無効。起動時に一度だけ決まり、以後変更されない
	BrotliEnabled bool `yaml:"brotli_enabled"`

	// 品質・レベルは圧縮率とリクエスト毎のCPU負荷のバランスで固定する
	BrotliQuality int `yaml:"brotli_quality"` // 1〜11。6がバランス良
	GzipLevel     int `yaml:"gzip_level"`     // 1〜9。6がバランス良
}

// Load は設定を読み込む
// 環境変数から取得し、設定されていない場合はデフォルト値を使う
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsIntOrDefault("PORT", 8000),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // 大きなWASM成果物の転送があるためタイムアウト無効化
		},
		Roots: RootsConfig{
			ExamplesDir: getEnvOrDefault("EXAMPLES_DIR", "examples"),
			DistDir:     getEnvOrDefault("DIST_DIR", "dist"),
			EntryFile:   getEnvOrDefault("ENTRY_FILE", "index.html"),
		},
		Compression: CompressionConfig{
			BrotliEnabled: os.Getenv("DISABLE_BROTLI") != "1",
			BrotliQuality: 6,
			GzipLevel:     6,
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// 圧縮設定の検証
	if c.Compression.BrotliQuality < 1 || c.Compression.BrotliQuality > 11 {
		return fmt.Errorf("無効なBrotli品質: %d", c.Compression.BrotliQuality)
	}
	if c.Compression.GzipLevel < 1 || c.Compression.GzipLevel > 9 {
		return fmt.Errorf("無効なGZIPレベル: %d", c.Compression.GzipLevel)
	}

	// ルート設定の検証
	if c.Roots.ExamplesDir == "" || c.Roots.DistDir == "" {
		return fmt.Errorf("ドキュメントルートが設定されていません")
	}

	return nil
}

// CheckPreconditions は起動前提条件を検証する。
// 違反した場合、プロセスはソケットをバインドする前に終了しなければならない。
func (c *Config) CheckPreconditions() error {
	// distディレクトリの存在確認
	info, err := os.Stat(c.Roots.DistDir)
	if err != nil {
		return fmt.Errorf("distディレクトリが見つかりません: %s (先にビルドを実行してください)", c.Roots.DistDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("distがディレクトリではありません: %s", c.Roots.DistDir)
	}

	// エントリーファイルの存在確認
	entry := c.EntryPath()
	if _, err := os.Stat(entry); err != nil {
		return fmt.Errorf("エントリーファイルが見つかりません: %s", entry)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// EntryPath は主ルート直下のエントリーファイルのパスを返す
func (c *Config) EntryPath() string {
	return filepath.Join(c.Roots.ExamplesDir, c.Roots.EntryFile)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
