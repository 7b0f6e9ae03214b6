// Package roster は在籍社員一覧のコントローラーです。メモリー上の
// 一覧キャッシュを所有し、デバウンスされた検索と描画を駆動します。
package roster

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/session"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Filter は社員検索の絞り込み条件です。空のフィールドは送信されません。
type Filter struct {
	Name       string
	Department string
	Position   string
	HireDate   string
}

// IsEmpty は条件が一つも無いかどうかを返します。
func (f Filter) IsEmpty() bool {
	return f.Name == "" && f.Department == "" && f.Position == "" && f.HireDate == ""
}

// Client は社員一覧関連のエンドポイントへの窓口です。
type Client interface {
	Employees(ctx context.Context) ([]*employee.Employee, error)
	SearchEmployees(ctx context.Context, f Filter) ([]*employee.Employee, error)
	Employee(ctx context.Context, id int) (*employee.Employee, error)
}

// SessionSource は現在のセッションを提供します。
type SessionSource interface {
	Current() *session.Session
}

// Scheduler は検索のデバウンスを担います。Trigger は待機中の予約を
// 破棄して計時をやり直します。
type Scheduler interface {
	Trigger(fn func())
	Stop()
}

// Controller は社員一覧ページを駆動します。描画ステップからネットワークを
// 呼ぶことはありません。
type Controller struct {
	client   Client
	sessions SessionSource
	search   Scheduler
	surface  view.Surface
	log      *logrus.Entry

	mu     sync.Mutex
	roster []*employee.Employee
	gen    uint64
}

// NewController は Controller を生成します。
func NewController(client Client, sessions SessionSource, search Scheduler, surface view.Surface, log *logrus.Entry) *Controller {
	return &Controller{
		client:   client,
		sessions: sessions,
		search:   search,
		surface:  surface,
		log:      log,
	}
}

// Load は全社員を取得して一覧キャッシュを丸ごと差し替え、再描画します。
// 失敗時はエラーを表示し、直前の描画内容には触れません。
func (c *Controller) Load(ctx context.Context) {
	emps, err := c.client.Employees(ctx)
	if err != nil {
		c.surface.ShowAlert(view.AlertEmployees, "Failed to load employees.", view.AlertError)
		return
	}

	c.mu.Lock()
	c.roster = emps
	c.gen++
	c.mu.Unlock()

	c.render(emps)
}

// Search は静止期間の後に検索を実行するよう予約します。条件は発火時点の
// フィールド値から組み立てられ、結果はキャッシュを経由せず直接描画されます。
// 古い応答は世代トークンの比較で捨てられます。
func (c *Controller) Search(ctx context.Context) {
	c.search.Trigger(func() {
		c.mu.Lock()
		c.gen++
		gen := c.gen
		c.mu.Unlock()

		f := Filter{
			Name:       strings.TrimSpace(c.surface.Value(view.FieldSearchName)),
			Department: c.surface.Value(view.FieldSearchDepartment),
			Position:   c.surface.Value(view.FieldSearchPosition),
			HireDate:   c.surface.Value(view.FieldSearchHireDate),
		}

		result, err := c.client.SearchEmployees(ctx, f)
		if err != nil {
			c.log.WithError(err).Warn("employee search failed")
			return
		}

		c.mu.Lock()
		stale := c.gen != gen
		c.mu.Unlock()
		if stale {
			return
		}

		c.render(result)
	})
}

// ClearSearch は全条件をリセットし、ネットワークを呼ばずに最後に
// 読み込んだ一覧キャッシュから再描画します。
func (c *Controller) ClearSearch() {
	c.search.Stop()

	c.surface.SetValue(view.FieldSearchName, "")
	c.surface.SetValue(view.FieldSearchDepartment, "")
	c.surface.SetValue(view.FieldSearchPosition, "")
	c.surface.SetValue(view.FieldSearchHireDate, "")

	c.mu.Lock()
	c.gen++
	cached := c.roster
	c.mu.Unlock()

	c.render(cached)
}

// ShowDetail は単一レコードを取得して読み取り専用の詳細を表示します。
func (c *Controller) ShowDetail(ctx context.Context, id int) {
	e, err := c.client.Employee(ctx, id)
	if err != nil {
		c.log.WithError(err).WithField("employee_id", id).Warn("failed to load employee detail")
		return
	}

	c.surface.RenderDetail(view.RegionDetail, buildDetail(e))
	c.surface.Show(view.ModalDetail)
}

func (c *Controller) render(emps []*employee.Employee) {
	var role session.Role
	if sess := c.sessions.Current(); sess != nil {
		role = sess.Role
	}
	c.surface.RenderTable(view.RegionEmployees, BuildTable(emps, role))
}

// ActionsFor はロールに応じた行操作を返します。VIEWER は閲覧のみ、
// それ以外は編集可、アーカイブは ADMIN のみです。これは表示上の方針で
// あり、権限の強制はサーバー側が独立して行います。
func ActionsFor(role session.Role) []view.Action {
	actions := []view.Action{view.ActionView}
	if role.CanEdit() {
		actions = append(actions, view.ActionEdit)
	}
	if role.CanArchive() {
		actions = append(actions, view.ActionArchive)
	}
	return actions
}

// BuildTable は社員一覧の描画内容を組み立てます。
func BuildTable(emps []*employee.Employee, role session.Role) view.Table {
	table := view.Table{
		Columns: []string{"#No", "Name", "Email", "Department", "Position", "Hire Date", "Salary", "Actions"},
		Empty:   "No employees found. Try a different search or add a new employee.",
	}

	actions := ActionsFor(role)
	for _, e := range emps {
		deptName := ""
		if e.Department != nil {
			deptName = e.Department.DepartmentName
		}
		title := ""
		if e.Position != nil {
			title = e.Position.Title
		}

		table.Rows = append(table.Rows, view.Row{
			Cells: []string{
				strconv.Itoa(e.EmployeeID),
				e.FullName(),
				e.Email,
				view.OrPlaceholder(deptName),
				view.OrPlaceholder(title),
				view.FormatDate(e.HireDate),
				view.FormatCurrency(e.Salary),
			},
			Actions: actions,
		})
	}

	return table
}

func buildDetail(e *employee.Employee) view.Detail {
	deptName := ""
	if e.Department != nil {
		deptName = e.Department.DepartmentName
	}
	title := ""
	payGrade := ""
	if e.Position != nil {
		title = e.Position.Title
		payGrade = e.Position.PayGrade
	}

	return view.Detail{
		Title: e.FullName(),
		Fields: []view.Field{
			{Label: "First Name", Value: e.FirstName},
			{Label: "Last Name", Value: e.LastName},
			{Label: "Email", Value: e.Email},
			{Label: "Phone", Value: view.OrPlaceholder(e.Phone)},
			{Label: "Department", Value: view.OrPlaceholder(deptName)},
			{Label: "Position", Value: view.OrPlaceholder(title) + " (" + view.OrPlaceholder(payGrade) + ")"},
			{Label: "Hire Date", Value: view.FormatDate(e.HireDate)},
			{Label: "Salary", Value: view.FormatCurrency(e.Salary)},
			{Label: "Status", Value: string(e.Status)},
			{Label: "Employee ID", Value: strconv.Itoa(e.EmployeeID)},
		},
	}
}
