package emsapi

import "fmt"

// ServerError はトランスポート障害またはエンベロープの success:false を
// 表します。Message はサーバー提供の文言で、空のこともあります。
type ServerError struct {
	StatusCode int
	Message    string
}

// Error は error インターフェースを実装します。
func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("emsapi: request failed (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("emsapi: request failed (status %d): %s", e.StatusCode, e.Message)
}

// ServerMessage は画面表示向けにサーバーの文言を返します。
func (e *ServerError) ServerMessage() string {
	return e.Message
}
