package server

import "github.com/gin-gonic/gin"

// SharedArrayBuffer等のAPIを利用するために必要なクロスオリジン分離ヘッダ
const (
	headerOpenerPolicy   = "Cross-Origin-Opener-Policy"
	headerEmbedderPolicy = "Cross-Origin-Embedder-Policy"
)

// isolationHeaders は全レスポンスにクロスオリジン分離ヘッダを付与する
// ミドルウェア。配信・委譲・エラーのいずれの経路でも必ず付与される。
func isolationHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(headerOpenerPolicy, "same-origin")
		c.Header(headerEmbedderPolicy, "require-corp")
		c.Next()
	}
}
