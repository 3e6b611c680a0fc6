// Package assets は、ビルド成果物の配信に関わる純粋なロジックを提供します。
//
// このパッケージは、リクエストパスのファイルシステムパスへの解決、
// Content-Encodingのネゴシエーション、Brotli/GZIPによる一括圧縮を
// 担当します。HTTPの型には依存せず、server パッケージから利用されます。
//
// 責務:
//   - 2つのドキュメントルートにまたがるパス解決
//   - クライアント能力とファイル種別に基づくエンコーディング選択
//   - 選択されたエンコーディングでの一括圧縮
//
// 仕様:
//   - 圧縮対象は固定の拡張子セットのみ（画像等の圧縮済み形式を再圧縮しない）
//   - Accept-Encodingの判定は生のヘッダ値への部分文字列一致（q値は解析しない）
//   - 圧縮はリクエスト毎にファイル全体を一括で行う（ストリーミングなし）
package assets
