package assets

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

// TestCompressBrotliRoundTrip はBrotli圧縮と復元をテストする
func TestCompressBrotliRoundTrip(t *testing.T) {
	compressor := &Compressor{BrotliQuality: 6, GzipLevel: 6}
	original := []byte(strings.Repeat("console.log('movi');\n", 200))

	compressed, err := compressor.Compress(original, EncodingBrotli)
	if err != nil {
		t.Fatalf("Brotli圧縮でエラーが発生しました: %v", err)
	}
	if len(compressed) >= len(original) {
		t.Errorf("繰り返しデータが縮みませんでした: %d >= %d", len(compressed), len(original))
	}

	decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		t.Fatalf("Brotli復元でエラーが発生しました: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Error("復元結果が元のデータと一致しません")
	}
}

// TestCompressGzipRoundTrip はGZIP圧縮と復元をテストする
func TestCompressGzipRoundTrip(t *testing.T) {
	compressor := &Compressor{BrotliQuality: 6, GzipLevel: 6}
	original := []byte(strings.Repeat("<svg xmlns='http://www.w3.org/2000/svg'/>\n", 100))

	compressed, err := compressor.Compress(original, EncodingGzip)
	if err != nil {
		t.Fatalf("GZIP圧縮でエラーが発生しました: %v", err)
	}

	r, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("GZIPリーダーの作成に失敗しました: %v", err)
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("GZIP復元でエラーが発生しました: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Error("復元結果が元のデータと一致しません")
	}
}

// TestCompressEmptyInput は空データの圧縮をテストする
func TestCompressEmptyInput(t *testing.T) {
	compressor := &Compressor{BrotliQuality: 6, GzipLevel: 6}

	for _, enc := range []Encoding{EncodingBrotli, EncodingGzip} {
		compressed, err := compressor.Compress(nil, enc)
		if err != nil {
			t.Fatalf("空データの圧縮でエラーが発生しました: %v", err)
		}
		if len(compressed) == 0 {
			t.Error("空データでも圧縮ヘッダは出力されるべきです")
		}
	}
}

// TestCompressIdentityIsError はidentityを渡した場合のエラーをテストする
func TestCompressIdentityIsError(t *testing.T) {
	compressor := &Compressor{BrotliQuality: 6, GzipLevel: 6}

	if _, err := compressor.Compress([]byte("data"), EncodingIdentity); err == nil {
		t.Error("identityの圧縮はエラーになるべきです")
	}
}
