package assets

import (
	"path/filepath"
	"strings"
)

// distPrefix は副ルート（ビルド成果物）を指すリクエストパスの予約プレフィックス
const distPrefix = "/dist/"

// Resolver はリクエストパスを2つのドキュメントルートに対して解決する
type Resolver struct {
	ExamplesDir string // 主ルート（サンプルページ）
	DistDir     string // 副ルート（ビルド成果物）
}

// Resolve はリクエストパスをファイルシステムパスへ構文的に解決する。
// /dist/ で始まるパスはプレフィックスを除いて副ルートへ、
// それ以外は主ルートへマッピングする。存在チェックは行わず、常にパスを返す。
func (r *Resolver) Resolve(urlPath string) string {
	if strings.HasPrefix(urlPath, distPrefix) {
		rest := strings.TrimPrefix(urlPath, distPrefix)
		return filepath.Join(r.DistDir, filepath.Clean("/"+rest))
	}
	return filepath.Join(r.ExamplesDir, filepath.Clean("/"+urlPath))
}

// IsDist は副ルート宛のリクエストパスかどうかを返す
func (r *Resolver) IsDist(urlPath string) bool {
	return strings.HasPrefix(urlPath, distPrefix)
}
