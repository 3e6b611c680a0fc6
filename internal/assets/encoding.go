package assets

import "strings"

// Encoding はレスポンスのContent-Encodingの選択結果
type Encoding int

const (
	// EncodingIdentity は無圧縮での配信
	EncodingIdentity Encoding = iota
	// EncodingGzip はGZIP圧縮での配信
	EncodingGzip
	// EncodingBrotli はBrotli圧縮での配信
	EncodingBrotli
)

// Token はContent-Encodingヘッダに設定するトークンを返す。
// identityの場合は空文字列（ヘッダを設定しない）。
func (e Encoding) Token() string {
	switch e {
	case EncodingGzip:
		return "gzip"
	case EncodingBrotli:
		return "br"
	default:
		return ""
	}
}

// compressibleExtensions は圧縮対象の拡張子の固定セット。
// 画像等の圧縮済みバイナリを再圧縮しないための許可リスト。
var compressibleExtensions = map[string]struct{}{
	".js":   {},
	".css":  {},
	".html": {},
	".json": {},
	".svg":  {},
	".xml":  {},
	".txt":  {},
	".wasm": {},
}

// IsCompressible は拡張子（小文字・ドット付き）が圧縮対象かどうかを返す
func IsCompressible(ext string) bool {
	_, ok := compressibleExtensions[ext]
	return ok
}

// Negotiate はAccept-Encodingヘッダ値・拡張子・Brotli可否から
// エンコーディングを選択する。優先順位は Brotli > GZIP > 無圧縮。
// 判定は生のヘッダ値への部分文字列一致で行う（q値は解析しない）。
func Negotiate(acceptEncoding, ext string, brotliEnabled bool) Encoding {
	if !IsCompressible(ext) {
		return EncodingIdentity
	}
	if brotliEnabled && strings.Contains(acceptEncoding, "br") {
		return EncodingBrotli
	}
	if strings.Contains(acceptEncoding, "gzip") {
		return EncodingGzip
	}
	return EncodingIdentity
}
