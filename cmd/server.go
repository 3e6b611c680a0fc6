// Package main はHaishinサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"haishin/internal/config"
	"haishin/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host     = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port     = flag.Int("port", 0, "サーバーのポート (デフォルト: 8000)")
		examples = flag.String("examples", "", "主ルートディレクトリ (デフォルト: examples)")
		dist     = flag.String("dist", "", "ビルド成果物ディレクトリ (デフォルト: dist)")
		noBrotli = flag.Bool("no-brotli", false, "Brotli圧縮を無効化してGZIPのみで配信する")
		help     = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Haishin")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *examples != "" {
		cfg.Roots.ExamplesDir = *examples
	}
	if *dist != "" {
		cfg.Roots.DistDir = *dist
	}
	if *noBrotli {
		cfg.Compression.BrotliEnabled = false
	}

	// 起動前提条件を検証する
	if err := cfg.CheckPreconditions(); err != nil {
		log.Fatalf("起動前提条件を満たしていません: %v", err)
	}

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	log.Printf("Haishin サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
