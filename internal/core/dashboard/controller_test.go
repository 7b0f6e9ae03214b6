package dashboard

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

type fakeDashboardClient struct {
	employees    []*employee.Employee
	employeesErr error
	past         []*employee.PastEmployee
	pastErr      error
}

func (f *fakeDashboardClient) Employees(_ context.Context) ([]*employee.Employee, error) {
	return f.employees, f.employeesErr
}

func (f *fakeDashboardClient) PastEmployees(_ context.Context) ([]*employee.PastEmployee, error) {
	return f.past, f.pastErr
}

func newTestLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func employeeFixture(id, deptID int, first string) *employee.Employee {
	return &employee.Employee{
		EmployeeID: id,
		FirstName:  first,
		LastName:   "Doe",
		Email:      first + "@example.com",
		Department: &employee.Department{DepartmentID: deptID, DepartmentName: "Engineering"},
		Position:   &employee.Position{PositionID: 1, Title: "Engineer"},
		HireDate:   employee.NewDate(2023, time.March, id),
		Salary:     decimal.NewFromInt(90000),
	}
}

func TestLoad_RendersStatsAndRecent(t *testing.T) {
	t.Parallel()

	client := &fakeDashboardClient{
		employees: []*employee.Employee{
			employeeFixture(1, 1, "A"),
			employeeFixture(2, 1, "B"),
			employeeFixture(3, 2, "C"),
			employeeFixture(4, 2, "D"),
			employeeFixture(5, 3, "E"),
			employeeFixture(6, 3, "F"),
			employeeFixture(7, 3, "G"),
		},
		past: []*employee.PastEmployee{
			{PastEmployeeID: 1, FirstName: "Old", LastName: "Timer"},
		},
	}
	surface := view.NewMemorySurface()
	c := NewController(client, surface, newTestLog())

	c.Load(context.Background())

	if got := surface.Text(view.TextStatTotal); got != "7" {
		t.Errorf("unexpected total stat %q", got)
	}
	if got := surface.Text(view.TextStatDepartments); got != "3" {
		t.Errorf("unexpected departments stat %q", got)
	}
	if got := surface.Text(view.TextStatPast); got != "1" {
		t.Errorf("unexpected past stat %q", got)
	}

	table, ok := surface.TableState(view.RegionRecent)
	if !ok {
		t.Fatal("expected recent table to be rendered")
	}
	wantColumns := []string{"Name", "Department", "Position", "Hire Date"}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("unexpected columns %v", table.Columns)
	}
	for i, col := range wantColumns {
		if table.Columns[i] != col {
			t.Errorf("column %d = %q, want %q", i, table.Columns[i], col)
		}
	}
	if len(table.Rows) != 5 {
		t.Fatalf("expected 5 recent rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Cells[2] != "Engineer" {
		t.Errorf("unexpected position cell %q", table.Rows[0].Cells[2])
	}
	if table.Rows[0].Cells[0] != "G Doe" {
		t.Errorf("expected newest employee first, got %q", table.Rows[0].Cells[0])
	}
	if table.Rows[4].Cells[0] != "C Doe" {
		t.Errorf("unexpected oldest recent row %q", table.Rows[4].Cells[0])
	}
}

func TestLoad_FailuresDegradeToEmpty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		client *fakeDashboardClient
		total  string
		past   string
	}{
		{
			name: "employees fail",
			client: &fakeDashboardClient{
				employeesErr: errors.New("boom"),
				past:         []*employee.PastEmployee{{PastEmployeeID: 1}},
			},
			total: "0",
			past:  "1",
		},
		{
			name: "past fails",
			client: &fakeDashboardClient{
				employees: []*employee.Employee{employeeFixture(1, 1, "A")},
				pastErr:   errors.New("boom"),
			},
			total: "1",
			past:  "0",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			surface := view.NewMemorySurface()
			c := NewController(tc.client, surface, newTestLog())

			c.Load(context.Background())

			if got := surface.Text(view.TextStatTotal); got != tc.total {
				t.Errorf("unexpected total stat %q", got)
			}
			if got := surface.Text(view.TextStatPast); got != tc.past {
				t.Errorf("unexpected past stat %q", got)
			}
		})
	}
}

func TestBuildRecentTable_EmptyRoster(t *testing.T) {
	t.Parallel()

	table := buildRecentTable(nil)
	if len(table.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(table.Rows))
	}
	if table.Empty == "" {
		t.Error("expected empty-state message")
	}
}
