package console

import (
	"strings"
	"testing"

	"github.com/ogurasousui/ems-console/internal/core/view"
)

func TestSurface_RenderTablePrintsRows(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := NewSurface(&out)

	s.RenderTable(view.RegionEmployees, view.Table{
		Columns: []string{"#No", "Name"},
		Rows: []view.Row{
			{Cells: []string{"1", "Jane Doe"}, Actions: []view.Action{view.ActionView, view.ActionEdit}},
		},
	})

	got := out.String()
	if !strings.Contains(got, "Jane Doe") {
		t.Errorf("expected row in output, got %q", got)
	}
	if !strings.Contains(got, "view/edit") {
		t.Errorf("expected actions in output, got %q", got)
	}

	if _, ok := s.TableState(view.RegionEmployees); !ok {
		t.Error("expected table state to be recorded")
	}
}

func TestSurface_RenderTableEmptyState(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := NewSurface(&out)

	s.RenderTable(view.RegionEmployees, view.Table{
		Columns: []string{"#No", "Name"},
		Empty:   "No employees found.",
	})

	if !strings.Contains(out.String(), "No employees found.") {
		t.Errorf("expected empty message, got %q", out.String())
	}
}

func TestSurface_ShowAlertPrintsMessage(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := NewSurface(&out)

	s.ShowAlert(view.AlertEmployees, "Employee saved.", view.AlertSuccess)

	if !strings.Contains(out.String(), "Employee saved.") {
		t.Errorf("expected alert message, got %q", out.String())
	}
	alert := s.AlertState(view.AlertEmployees)
	if !alert.Visible || alert.Kind != view.AlertSuccess {
		t.Errorf("expected recorded alert, got %+v", alert)
	}
}

func TestSurface_RenderDetailPrintsFields(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := NewSurface(&out)

	s.RenderDetail(view.RegionDetail, view.Detail{
		Title: "Jane Doe",
		Fields: []view.Field{
			{Label: "Email", Value: "jane.doe@example.com"},
		},
	})

	got := out.String()
	if !strings.Contains(got, "== Jane Doe ==") {
		t.Errorf("expected detail title, got %q", got)
	}
	if !strings.Contains(got, "jane.doe@example.com") {
		t.Errorf("expected field value, got %q", got)
	}
}
