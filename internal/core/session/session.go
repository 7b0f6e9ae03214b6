// Package session は認証トークンと現在のユーザー識別を管理します。
package session

// Role はユーザーの役割です。サーバー側が権限の最終的な権威であり、
// クライアント側の判定は操作ボタンの表示制御のみに使われます。
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// CanEdit は編集ボタンを表示してよいかを返します。
func (r Role) CanEdit() bool {
	return r != RoleViewer
}

// CanArchive はアーカイブボタンを表示してよいかを返します。
func (r Role) CanArchive() bool {
	return r == RoleAdmin
}

// Session は確立された認証状態です。ログイン成功時に生成され、
// ログアウトまたは起動時の復元失敗で破棄されます。
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
