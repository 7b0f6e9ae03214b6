// Package app は画面遷移と認証フローを束ねる最上位のコントローラーです。
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/session"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Page は遷移先のページです。
type Page string

const (
	PageDashboard Page = "dashboard"
	PageEmployees Page = "employees"
	PagePast      Page = "past"
)

// Sessions はセッションのライフサイクルを提供します。session.Store が
// 実装します。
type Sessions interface {
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Restore() *session.Session
	Logout()
	Current() *session.Session
}

// Lookups は参照データの読み込みと検索フィルター向けの射影を提供します。
type Lookups interface {
	Refresh(ctx context.Context)
	DepartmentFilters() []view.Option
	PositionFilters() []view.Option
}

// PageLoader はページ表示時の読み込み処理です。
type PageLoader interface {
	Load(ctx context.Context)
}

// App は認証状態に応じて画面を切り替え、ページ遷移を駆動します。
type App struct {
	sessions  Sessions
	lookups   Lookups
	dashboard PageLoader
	employees PageLoader
	past      PageLoader
	surface   view.Surface
	log       *logrus.Entry

	current Page
}

// New は App を生成します。
func New(sessions Sessions, lookups Lookups, dashboard, employees, past PageLoader, surface view.Surface, log *logrus.Entry) *App {
	return &App{
		sessions:  sessions,
		lookups:   lookups,
		dashboard: dashboard,
		employees: employees,
		past:      past,
		surface:   surface,
		log:       log,
	}
}

// Start は永続化されたセッションの復元を試み、復元できればアプリ画面を、
// できなければログイン画面を表示します。
func (a *App) Start(ctx context.Context) {
	if sess := a.sessions.Restore(); sess != nil {
		a.initApp(ctx, sess)
		return
	}

	a.surface.Hide(view.ScreenApp)
	a.surface.Show(view.ScreenLogin)
}

// Login はログインフォームの値で認証を試みます。資格情報が欠けている
// 場合はローカルで拒否され、ネットワークには触れません。
func (a *App) Login(ctx context.Context) {
	username := a.surface.Value(view.FieldLoginUsername)
	password := a.surface.Value(view.FieldLoginPassword)

	a.surface.HideAlert(view.AlertLogin)
	// 認証中は再送信できないようボタンを引っ込めます。
	a.surface.Hide(view.ButtonLogin)
	a.surface.SetText(view.TextLoginButton, "Signing in...")

	sess, err := a.sessions.Login(ctx, username, password)

	a.surface.SetText(view.TextLoginButton, "Sign In")
	a.surface.Show(view.ButtonLogin)

	if err != nil {
		message := view.ServerMessage(err, "Login failed.")
		if errors.Is(err, session.ErrMissingCredentials) {
			message = "Please enter username and password."
		}
		a.surface.ShowAlert(view.AlertLogin, message, view.AlertError)
		return
	}

	a.initApp(ctx, sess)
}

// Logout はセッションを破棄してログイン画面に戻ります。
func (a *App) Logout() {
	a.sessions.Logout()

	a.surface.SetValue(view.FieldLoginUsername, "")
	a.surface.SetValue(view.FieldLoginPassword, "")
	a.surface.HideAlert(view.AlertLogin)

	a.surface.Hide(view.ScreenApp)
	a.surface.Show(view.ScreenLogin)
}

// NavigateTo は対象ページの読み込み処理を一度だけ起動します。
func (a *App) NavigateTo(ctx context.Context, page Page) {
	a.current = page

	switch page {
	case PageEmployees:
		a.employees.Load(ctx)
	case PagePast:
		a.past.Load(ctx)
	default:
		a.dashboard.Load(ctx)
	}
}

// CurrentPage は最後に遷移したページを返します。
func (a *App) CurrentPage() Page {
	return a.current
}

// initApp はログイン直後・復元直後の初期化です。サイドバーの表示を整え、
// 参照データを読み込み、ダッシュボードに遷移します。
func (a *App) initApp(ctx context.Context, sess *session.Session) {
	a.surface.Hide(view.ScreenLogin)
	a.surface.Show(view.ScreenApp)

	a.surface.SetText(view.TextSidebarUsername, sess.Username)
	a.surface.SetText(view.TextSidebarRole, string(sess.Role))
	a.surface.SetText(view.TextUserAvatar, avatarInitial(sess.Username))

	if sess.Role.CanEdit() {
		a.surface.Show(view.ButtonAddEmployee)
	} else {
		a.surface.Hide(view.ButtonAddEmployee)
	}

	a.lookups.Refresh(ctx)
	a.surface.SetOptions(view.FieldSearchDepartment, a.lookups.DepartmentFilters())
	a.surface.SetOptions(view.FieldSearchPosition, a.lookups.PositionFilters())

	a.NavigateTo(ctx, PageDashboard)
}

func avatarInitial(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(username)[0]))
}
