// Package emsapi は REST クライアントの上に型付きのエンドポイント呼び出しを
// 提供します。各コア・コントローラーが定義する利用側インターフェースを
// この Gateway が実装します。
package emsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/roster"
	"github.com/ogurasousui/ems-console/internal/core/session"
	"github.com/ogurasousui/ems-console/internal/platform/rest"
)

// Caller は低レベルの API 呼び出し契約です。*rest.Client が実装します。
type Caller interface {
	Call(ctx context.Context, req rest.Request) rest.Result
}

// Gateway は EMS バックエンドの各エンドポイントへの型付き窓口です。
type Gateway struct {
	api Caller
}

// NewGateway は Gateway を生成します。
func NewGateway(api Caller) *Gateway {
	return &Gateway{api: api}
}

// Login は認証エンドポイントを呼び出し、確立されたセッションを返します。
func (g *Gateway) Login(ctx context.Context, username, password string) (*session.Session, error) {
	env, err := g.do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"username": username, "password": password},
	})
	if err != nil {
		return nil, err
	}
	return decodeData[*session.Session](env)
}

// Departments は部署の参照データを取得します。
func (g *Gateway) Departments(ctx context.Context) ([]employee.Department, error) {
	env, err := g.do(ctx, rest.Request{Method: http.MethodGet, Path: "/lookups/departments", Authenticated: true})
	if err != nil {
		return nil, err
	}
	return decodeData[[]employee.Department](env)
}

// Positions は職位の参照データを取得します。
func (g *Gateway) Positions(ctx context.Context) ([]employee.Position, error) {
	env, err := g.do(ctx, rest.Request{Method: http.MethodGet, Path: "/lookups/positions", Authenticated: true})
	if err != nil {
		return nil, err
	}
	return decodeData[[]employee.Position](env)
}

// Employees は在籍中の全社員を取得します。
func (g *Gateway) Employees(ctx context.Context) ([]*employee.Employee, error) {
	env, err := g.do(ctx, rest.Request{Method: http.MethodGet, Path: "/employees", Authenticated: true})
	if err != nil {
		return nil, err
	}
	return decodeData[[]*employee.Employee](env)
}

// SearchEmployees は条件付き検索を実行します。条件がすべて空でも
// 検索エンドポイントを呼び出します (全件が返ります)。
func (g *Gateway) SearchEmployees(ctx context.Context, q roster.Filter) ([]*employee.Employee, error) {
	params := url.Values{}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Department != "" {
		params.Set("department", q.Department)
	}
	if q.Position != "" {
		params.Set("position", q.Position)
	}
	if q.HireDate != "" {
		params.Set("hireDate", q.HireDate)
	}

	env, err := g.do(ctx, rest.Request{
		Method:        http.MethodGet,
		Path:          "/employees/search",
		Query:         params,
		Authenticated: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeData[[]*employee.Employee](env)
}

// Employee は単一の社員レコードを取得します。
func (g *Gateway) Employee(ctx context.Context, id int) (*employee.Employee, error) {
	env, err := g.do(ctx, rest.Request{
		Method:        http.MethodGet,
		Path:          fmt.Sprintf("/employees/%d", id),
		Authenticated: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeData[*employee.Employee](env)
}

// CreateEmployee は社員を新規作成し、サーバーのメッセージを返します。
func (g *Gateway) CreateEmployee(ctx context.Context, p employee.Payload) (string, error) {
	env, err := g.do(ctx, rest.Request{
		Method:        http.MethodPost,
		Path:          "/employees",
		Body:          p,
		Authenticated: true,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// UpdateEmployee は社員を更新し、サーバーのメッセージを返します。
func (g *Gateway) UpdateEmployee(ctx context.Context, id int, p employee.Payload) (string, error) {
	env, err := g.do(ctx, rest.Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/employees/%d", id),
		Body:          p,
		Authenticated: true,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ArchiveEmployee は社員をアーカイブ (ソフト削除) します。理由は
// クエリパラメーターで渡されます。
func (g *Gateway) ArchiveEmployee(ctx context.Context, id int, reason string) (string, error) {
	params := url.Values{}
	params.Set("reason", reason)

	env, err := g.do(ctx, rest.Request{
		Method:        http.MethodDelete,
		Path:          fmt.Sprintf("/employees/%d", id),
		Query:         params,
		Authenticated: true,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// PastEmployees はアーカイブ済み社員を取得します。
func (g *Gateway) PastEmployees(ctx context.Context) ([]*employee.PastEmployee, error) {
	env, err := g.do(ctx, rest.Request{Method: http.MethodGet, Path: "/employees/past", Authenticated: true})
	if err != nil {
		return nil, err
	}
	return decodeData[[]*employee.PastEmployee](env)
}

func (g *Gateway) do(ctx context.Context, req rest.Request) (rest.Envelope, error) {
	res := g.api.Call(ctx, req)
	if !res.Succeeded || !res.Envelope.Success {
		return rest.Envelope{}, &ServerError{StatusCode: res.StatusCode, Message: res.Envelope.Message}
	}
	return res.Envelope, nil
}

// decodeData はエンベロープの data をデコードします。data が無い応答は
// ゼロ値として扱います (一覧ならば空のまま)。
func decodeData[T any](env rest.Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("emsapi: decode data: %w", err)
	}
	return out, nil
}
