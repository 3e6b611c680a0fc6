package server

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"haishin/internal/assets"

	"github.com/gin-gonic/gin"
)

// healthResponse はヘルスチェックのレスポンス
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// statusResponse はシステム状態のレスポンス
type statusResponse struct {
	Status      string     `json:"status"`
	Server      serverInfo `json:"server"`
	Roots       rootsInfo  `json:"roots"`
	Compression string     `json:"compression"`
	Timestamp   time.Time  `json:"timestamp"`
}

// serverInfo はサーバーの接続情報
type serverInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// rootsInfo は配信中のドキュメントルート情報
type rootsInfo struct {
	Examples string `json:"examples"`
	Dist     string `json:"dist"`
}

// handleHealth はヘルスチェックエンドポイントの実装
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// handleStatus はシステム状態取得エンドポイントの実装
func (s *Server) handleStatus(c *gin.Context) {
	compression := "gzip"
	if s.config.Compression.BrotliEnabled {
		compression = "brotli+gzip"
	}

	c.JSON(http.StatusOK, statusResponse{
		Status: "running",
		Server: serverInfo{
			Host: s.config.Server.Host,
			Port: s.config.Server.Port,
		},
		Roots: rootsInfo{
			Examples: s.config.Roots.ExamplesDir,
			Dist:     s.config.Roots.DistDir,
		},
		Compression: compression,
		Timestamp:   time.Now(),
	})
}

// handleArtifact は成果物配信のディスパッチャ。
// パスを解決し、通常ファイルであれば圧縮ネゴシエーションの上で配信する。
// 通常ファイルでなければ汎用の静的ファイルハンドラに委譲する。
func (s *Server) handleArtifact(c *gin.Context) {
	urlPath := c.Request.URL.Path
	fsPath := s.resolver.Resolve(urlPath)

	info, err := os.Stat(fsPath)
	if err != nil || !info.Mode().IsRegular() {
		s.delegate(c, urlPath)
		return
	}

	if err := s.serveFile(c, fsPath); err != nil {
		// 1リクエストの失敗でサーバーを落とさない
		c.String(http.StatusNotFound, "File not found: %s", err.Error())
	}
}

// delegate は解決できなかったパスを汎用ハンドラに委譲する。
// 分離ヘッダはミドルウェアで付与済みのため、この経路でも失われない。
func (s *Server) delegate(c *gin.Context, urlPath string) {
	if s.resolver.IsDist(urlPath) {
		s.distFallback.ServeHTTP(c.Writer, c.Request)
		return
	}
	s.examplesFallback.ServeHTTP(c.Writer, c.Request)
}

// serveFile は解決済みの通常ファイルを配信する。
// ディスクから毎回読み直すため、最新のビルド内容が常に反映される。
func (s *Server) serveFile(c *gin.Context, fsPath string) error {
	content, err := os.ReadFile(fsPath)
	if err != nil {
		return fmt.Errorf("ファイルの読み込みに失敗: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fsPath))
	enc := assets.Negotiate(
		c.GetHeader("Accept-Encoding"), ext, s.config.Compression.BrotliEnabled)

	body := content
	if enc != assets.EncodingIdentity {
		body, err = s.compressor.Compress(content, enc)
		if err != nil {
			return err
		}
		c.Header("Content-Encoding", enc.Token())
		// 中間キャッシュが能力の異なるクライアントへ
		// 誤ったエンコーディングを返さないために必須
		c.Header("Vary", "Accept-Encoding")
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Content-Lengthは実際に書き込むボディ長（圧縮時は圧縮後の長さ）
	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Data(http.StatusOK, contentType, body)
	return nil
}
