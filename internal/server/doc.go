// Package server は、HTTPサーバーとビルド成果物の配信を管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// 圧縮ネゴシエーション付きの静的ファイル配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - リクエストパスの解決と成果物の配信（リクエスト毎にディスクから読み直す）
//   - 全レスポンスへのクロスオリジン分離ヘッダの付与
//   - 通常ファイルとして解決できないパスの汎用ハンドラへの委譲
//   - ヘルスチェックとステータスの提供
//
// 仕様:
//   - トランスポートにはgin-gonic/ginを使用
//   - net/httpの接続毎goroutineモデルで動作する（共有可変状態は持たない）
//   - グレースフルシャットダウンに対応
//   - /health と /api/status は主ルートの同名ファイルを隠す（開発用途では許容）
package server
