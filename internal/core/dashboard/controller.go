// Package dashboard は統計カードと直近入社の一覧を描画します。
package dashboard

import (
	"context"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// recentLimit は直近入社として表示する件数です。
const recentLimit = 5

// Client はダッシュボードが参照するエンドポイントへの窓口です。
type Client interface {
	Employees(ctx context.Context) ([]*employee.Employee, error)
	PastEmployees(ctx context.Context) ([]*employee.PastEmployee, error)
}

// Controller はダッシュボードページを駆動します。
type Controller struct {
	client  Client
	surface view.Surface
	log     *logrus.Entry
}

// NewController は Controller を生成します。
func NewController(client Client, surface view.Surface, log *logrus.Entry) *Controller {
	return &Controller{client: client, surface: surface, log: log}
}

// Load は在籍一覧と退職者一覧を並行して取得し、統計と直近入社を描画します。
// 片方が失敗しても空として扱い、もう片方の表示は続行します。
func (c *Controller) Load(ctx context.Context) {
	var (
		wg   sync.WaitGroup
		emps []*employee.Employee
		past []*employee.PastEmployee
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		if emps, err = c.client.Employees(ctx); err != nil {
			c.log.WithError(err).Warn("failed to load employees for dashboard")
			emps = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if past, err = c.client.PastEmployees(ctx); err != nil {
			c.log.WithError(err).Warn("failed to load past employees for dashboard")
			past = nil
		}
	}()
	wg.Wait()

	departments := make(map[int]struct{})
	for _, e := range emps {
		if e.Department != nil {
			departments[e.Department.DepartmentID] = struct{}{}
		}
	}

	c.surface.SetText(view.TextStatTotal, strconv.Itoa(len(emps)))
	c.surface.SetText(view.TextStatDepartments, strconv.Itoa(len(departments)))
	c.surface.SetText(view.TextStatPast, strconv.Itoa(len(past)))

	c.surface.RenderTable(view.RegionRecent, buildRecentTable(emps))
}

// buildRecentTable は一覧の末尾から最大 recentLimit 件を新しい順に並べます。
func buildRecentTable(emps []*employee.Employee) view.Table {
	table := view.Table{
		Columns: []string{"Name", "Department", "Position", "Hire Date"},
		Empty:   "No employees yet.",
	}

	for i := len(emps) - 1; i >= 0 && len(table.Rows) < recentLimit; i-- {
		e := emps[i]
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
				e.FullName(),
				view.OrPlaceholder(deptName),
				view.OrPlaceholder(title),
				view.FormatDate(e.HireDate),
			},
		})
	}

	return table
}
