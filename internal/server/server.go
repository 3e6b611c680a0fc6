package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haishin/internal/assets"
	"haishin/internal/config"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server

	resolver   *assets.Resolver
	compressor *assets.Compressor

	// 通常ファイルとして解決できないパスの委譲先となる汎用ハンドラ
	examplesFallback http.Handler
	distFallback     http.Handler
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	return &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		resolver: &assets.Resolver{
			ExamplesDir: cfg.Roots.ExamplesDir,
			DistDir:     cfg.Roots.DistDir,
		},
		compressor: &assets.Compressor{
			BrotliQuality: cfg.Compression.BrotliQuality,
			GzipLevel:     cfg.Compression.GzipLevel,
		},
		examplesFallback: http.FileServer(http.Dir(cfg.Roots.ExamplesDir)),
		distFallback: http.StripPrefix("/dist/",
			http.FileServer(http.Dir(cfg.Roots.DistDir))),
	}
}

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes() {
	// すべてのレスポンスに分離ヘッダを付与する
	s.engine.Use(isolationHeaders())

	// ヘルスチェックエンドポイント
	s.engine.GET("/health", s.handleHealth)

	// APIエンドポイント
	s.engine.GET("/api/status", s.handleStatus)

	// それ以外のパスはすべて成果物ディスパッチャが処理する
	s.engine.NoRoute(s.handleArtifact)
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	// ルートを設定
	s.setupRoutes()

	// 起動情報を表示
	log.Printf("配信ルート: examples=%s dist=%s",
		s.config.Roots.ExamplesDir, s.config.Roots.DistDir)
	if s.config.Compression.BrotliEnabled {
		log.Println("圧縮: Brotli（GZIPフォールバック付き）が有効です")
	} else {
		log.Println("警告: Brotliが無効化されています。GZIPのみで配信します")
	}

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPサーバーを起動しています: http://%s/%s",
			s.config.ServerAddress(), s.config.Roots.EntryFile)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}
