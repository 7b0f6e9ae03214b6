package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/app"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Roster は社員一覧ページへの操作です。
type Roster interface {
	Search(ctx context.Context)
	ClearSearch()
	ShowDetail(ctx context.Context, id int)
}

// Editor は追加・編集モーダルへの操作です。
type Editor interface {
	OpenCreate()
	OpenEdit(ctx context.Context, id int)
	Close()
	Save(ctx context.Context)
}

// Archiver はアーカイブ確認フローへの操作です。
type Archiver interface {
	RequestArchive(id int, displayName string)
	ConfirmArchive(ctx context.Context)
	CancelArchive()
}

// Loop は対話コマンドを読み取り、各コントローラーに振り分けます。
type Loop struct {
	app     *app.App
	roster  Roster
	editor  Editor
	archive Archiver
	surface *Surface
	in      io.Reader
	out     io.Writer
	log     *logrus.Entry
}

// NewLoop は Loop を生成します。
func NewLoop(a *app.App, roster Roster, editor Editor, archive Archiver, surface *Surface, in io.Reader, out io.Writer, log *logrus.Entry) *Loop {
	return &Loop{
		app:     a,
		roster:  roster,
		editor:  editor,
		archive: archive,
		surface: surface,
		in:      in,
		out:     out,
		log:     log,
	}
}

// Run は起動処理の後、入力が尽きるか quit が入力されるまでコマンドを
// 処理し続けます。
func (l *Loop) Run(ctx context.Context) error {
	l.app.Start(ctx)
	l.printPrompt()

	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			l.printPrompt()
			continue
		}

		if quit := l.dispatch(ctx, line); quit {
			return nil
		}
		l.printPrompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console: read input: %w", err)
	}
	return nil
}

func (l *Loop) dispatch(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		l.printHelp()
	case "login":
		l.login(ctx, rest)
	case "logout":
		l.app.Logout()
	case "dashboard":
		l.app.NavigateTo(ctx, app.PageDashboard)
	case "employees":
		l.app.NavigateTo(ctx, app.PageEmployees)
	case "past":
		l.app.NavigateTo(ctx, app.PagePast)
	case "search":
		l.search(ctx, rest)
	case "clear":
		l.roster.ClearSearch()
	case "show":
		l.withID(rest, func(id int) { l.roster.ShowDetail(ctx, id) })
	case "add":
		l.editor.OpenCreate()
	case "edit":
		l.withID(rest, func(id int) { l.editor.OpenEdit(ctx, id) })
	case "set":
		l.set(rest)
	case "save":
		l.editor.Save(ctx)
	case "cancel":
		l.editor.Close()
		l.archive.CancelArchive()
	case "archive":
		l.requestArchive(rest)
	case "confirm":
		l.archive.ConfirmArchive(ctx)
	default:
		fmt.Fprintf(l.out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

// login <username> <password>
func (l *Loop) login(ctx context.Context, rest string) {
	username, password, _ := strings.Cut(rest, " ")
	l.surface.SetValue(view.FieldLoginUsername, strings.TrimSpace(username))
	l.surface.SetValue(view.FieldLoginPassword, strings.TrimSpace(password))
	l.app.Login(ctx)
}

// search [name] は名前条件だけを更新して検索を予約します。部署・職位・
// 入社日の条件は set コマンドで個別に設定します。
func (l *Loop) search(ctx context.Context, rest string) {
	l.surface.SetValue(view.FieldSearchName, rest)
	l.roster.Search(ctx)
}

// set <field> <value> はフォームや検索のフィールドを直接更新します。
func (l *Loop) set(rest string) {
	field, value, ok := strings.Cut(rest, " ")
	if !ok && field == "" {
		fmt.Fprintln(l.out, "usage: set <field> <value>")
		return
	}
	l.surface.SetValue(field, strings.TrimSpace(value))
}

// archive <id> [display name]
func (l *Loop) requestArchive(rest string) {
	idRaw, name, _ := strings.Cut(rest, " ")
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		fmt.Fprintln(l.out, "usage: archive <id> [name]")
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Employee #" + idRaw
	}
	l.archive.RequestArchive(id, name)
}

func (l *Loop) withID(rest string, fn func(id int)) {
	id, err := strconv.Atoi(rest)
	if err != nil {
		fmt.Fprintln(l.out, "expected a numeric employee id")
		return
	}
	fn(id)
}

func (l *Loop) printPrompt() {
	fmt.Fprint(l.out, "> ")
}

func (l *Loop) printHelp() {
	fmt.Fprintln(l.out, `commands:
  login <user> <pass>   sign in
  logout                sign out
  dashboard             show stats and recent hires
  employees             show the employee list
  past                  show archived employees
  search [name]         search by name (set searchDept etc. for more)
  clear                 reset search filters
  show <id>             show one employee
  add                   open the add form
  edit <id>             open the edit form
  set <field> <value>   set a form or search field
  save                  submit the open form
  archive <id> [name]   ask to archive an employee
  confirm               confirm the pending archive
  cancel                close the open form or confirmation
  quit                  exit`)
}
