// Package past は退職者 (アーカイブ済み社員) の閲覧ページを駆動します。
package past

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Client は退職者一覧エンドポイントへの窓口です。
type Client interface {
	PastEmployees(ctx context.Context) ([]*employee.PastEmployee, error)
}

// Controller は退職者ページを駆動します。一覧は読み取り専用で、
// キャッシュは持ちません。
type Controller struct {
	client  Client
	surface view.Surface
	log     *logrus.Entry
}

// NewController は Controller を生成します。
func NewController(client Client, surface view.Surface, log *logrus.Entry) *Controller {
	return &Controller{client: client, surface: surface, log: log}
}

// Load は退職者一覧を取得して描画します。失敗時は一覧領域を失敗メッセージ
// で置き換えます。
func (c *Controller) Load(ctx context.Context) {
	records, err := c.client.PastEmployees(ctx)
	if err != nil {
		c.log.WithError(err).Warn("failed to load past employees")
		c.surface.RenderTable(view.RegionPast, view.Table{
			Columns: columns(),
			Empty:   "Failed to load past employees.",
		})
		return
	}

	c.surface.RenderTable(view.RegionPast, BuildTable(records))
}

func columns() []string {
	return []string{"#No", "Orig. ID", "Name", "Email", "Department", "Position", "Hire Date", "Termination Date", "Reason", "Salary"}
}

// BuildTable は退職者一覧の描画内容を組み立てます。
func BuildTable(records []*employee.PastEmployee) view.Table {
	table := view.Table{
		Columns: columns(),
		Empty:   "No past employees.",
	}

	for _, p := range records {
		deptName := ""
		if p.Department != nil {
			deptName = p.Department.DepartmentName
		}
		title := ""
		if p.Position != nil {
			title = p.Position.Title
		}

		table.Rows = append(table.Rows, view.Row{
			Cells: []string{
				strconv.Itoa(p.PastEmployeeID),
				strconv.Itoa(p.OriginalEmployeeID),
				p.FullName(),
				p.Email,
				view.OrPlaceholder(deptName),
				view.OrPlaceholder(title),
				view.FormatDate(p.HireDate),
				view.FormatDate(p.TerminationDate),
				view.OrPlaceholder(p.TerminationReason),
				view.FormatCurrency(p.Salary),
			},
		})
	}

	return table
}
