// Package console は描画境界の端末実装です。コントローラーが書き込んだ
// 内容をメモリーに保持しつつ、表やアラートを標準出力へ映します。
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Surface は view.MemorySurface を端末出力で包んだ実装です。状態の
// 読み書きは埋め込んだメモリー実装に委譲し、利用者向けの描画だけを
// 上書きします。
type Surface struct {
	*view.MemorySurface
	out io.Writer
}

// NewSurface は Surface を生成します。
func NewSurface(out io.Writer) *Surface {
	return &Surface{MemorySurface: view.NewMemorySurface(), out: out}
}

// ShowAlert はアラートを記録し、端末にも表示します。
func (s *Surface) ShowAlert(id, message string, kind view.AlertKind) {
	s.MemorySurface.ShowAlert(id, message, kind)

	prefix := "!"
	if kind == view.AlertSuccess {
		prefix = "*"
	}
	fmt.Fprintf(s.out, "%s %s\n", prefix, message)
}

// SetText はテキスト領域を記録し、統計カードは端末にも映します。
func (s *Surface) SetText(id, text string) {
	s.MemorySurface.SetText(id, text)

	switch id {
	case view.TextStatTotal:
		fmt.Fprintf(s.out, "Total Employees: %s\n", text)
	case view.TextStatDepartments:
		fmt.Fprintf(s.out, "Departments: %s\n", text)
	case view.TextStatPast:
		fmt.Fprintf(s.out, "Past Employees: %s\n", text)
	}
}

// RenderTable は表を記録し、桁揃えして端末に出力します。
func (s *Surface) RenderTable(id string, table view.Table) {
	s.MemorySurface.RenderTable(id, table)

	if len(table.Rows) == 0 {
		fmt.Fprintln(s.out, table.Empty)
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		cells := row.Cells
		if len(row.Actions) > 0 {
			actions := make([]string, len(row.Actions))
			for i, a := range row.Actions {
				actions[i] = string(a)
			}
			cells = append(append([]string{}, cells...), strings.Join(actions, "/"))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

// RenderDetail は詳細を記録し、ラベル付きで端末に出力します。
func (s *Surface) RenderDetail(id string, detail view.Detail) {
	s.MemorySurface.RenderDetail(id, detail)

	fmt.Fprintf(s.out, "== %s ==\n", detail.Title)
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, f := range detail.Fields {
		fmt.Fprintf(w, "%s:\t%s\n", f.Label, f.Value)
	}
	w.Flush()
}
