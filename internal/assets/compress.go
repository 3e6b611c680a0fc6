package assets

import (
	"bytes"
	"compress/gzip"
	"fmt"

	"github.com/andybalholm/brotli"
)

// Compressor は選択されたエンコーディングでバイト列を一括圧縮する。
// リクエスト毎に同期的に実行されるため、品質は最高値ではなく
// 圧縮率とCPU負荷のバランスが取れた中間値に固定している。
type Compressor struct {
	BrotliQuality int // 1〜11
	GzipLevel     int // 1〜9
}

// Compress はエンコーディングに応じてデータ全体を一括圧縮する。
// EncodingIdentityを渡すのは呼び出し側の誤りでありエラーを返す。
func (c *Compressor) Compress(data []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingBrotli:
		return c.compressBrotli(data)
	case EncodingGzip:
		return c.compressGzip(data)
	default:
		return nil, fmt.Errorf("圧縮できないエンコーディング: %d", enc)
	}
}

// compressBrotli はBrotliでデータを圧縮する
func (c *Compressor) compressBrotli(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterOptions(&buf, brotli.WriterOptions{Quality: c.BrotliQuality})
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli圧縮に失敗: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli圧縮に失敗: %w", err)
	}
	return buf.Bytes(), nil
}

// compressGzip はGZIPでデータを圧縮する
func (c *Compressor) compressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, c.GzipLevel)
	if err != nil {
		return nil, fmt.Errorf("gzipライターの作成に失敗: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip圧縮に失敗: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip圧縮に失敗: %w", err)
	}
	return buf.Bytes(), nil
}
