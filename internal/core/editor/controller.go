// Package editor は社員の追加・編集フォームのライフサイクルを管理します。
package editor

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/ems-console/internal/core/employee"
	"github.com/ogurasousui/ems-console/internal/core/view"
)

// Client は単一レコードの取得と作成・更新の窓口です。
type Client interface {
	Employee(ctx context.Context, id int) (*employee.Employee, error)
	CreateEmployee(ctx context.Context, p employee.Payload) (string, error)
	UpdateEmployee(ctx context.Context, id int, p employee.Payload) (string, error)
}

// Lookups は編集フォームの選択リスト (値 = ID) を提供します。
type Lookups interface {
	DepartmentSelections() []view.Option
	PositionSelections() []view.Option
}

// ListReloader は保存成功後の一覧再読み込みを担います。
type ListReloader interface {
	Load(ctx context.Context)
}

// Controller は追加・編集モーダルを駆動します。
type Controller struct {
	client    Client
	lookups   Lookups
	list      ListReloader
	surface   view.Surface
	validator *FormValidator
	log       *logrus.Entry
}

// NewController は Controller を生成します。
func NewController(client Client, lookups Lookups, list ListReloader, surface view.Surface, log *logrus.Entry) *Controller {
	return &Controller{
		client:    client,
		lookups:   lookups,
		list:      list,
		surface:   surface,
		validator: NewFormValidator(),
		log:       log,
	}
}

// OpenCreate はフォームを空にして追加モードで開きます。
func (c *Controller) OpenCreate() {
	c.surface.SetText(view.TextModalTitle, "Add Employee")
	c.surface.SetText(view.TextSaveButton, "Save Employee")
	c.clearForm()
	c.surface.HideAlert(view.AlertModal)
	c.populateSelections()
	c.surface.Show(view.ModalEmployee)
}

// OpenEdit は対象レコードを取得してフォームを編集モードで開きます。
// 選択リストは値を設定する前に埋め終わっているため、描画待ちの遅延は
// 不要です。
func (c *Controller) OpenEdit(ctx context.Context, id int) {
	e, err := c.client.Employee(ctx, id)
	if err != nil {
		c.log.WithError(err).WithField("employee_id", id).Warn("failed to load employee for edit")
		return
	}

	c.populateSelections()

	c.surface.SetText(view.TextModalTitle, "Edit Employee")
	c.surface.SetText(view.TextSaveButton, "Update Employee")

	c.surface.SetValue(view.FieldEmployeeID, strconv.Itoa(e.EmployeeID))
	c.surface.SetValue(view.FieldFirstName, e.FirstName)
	c.surface.SetValue(view.FieldLastName, e.LastName)
	c.surface.SetValue(view.FieldEmail, e.Email)
	c.surface.SetValue(view.FieldPhone, e.Phone)
	c.surface.SetValue(view.FieldHireDate, e.HireDate.String())
	c.surface.SetValue(view.FieldSalary, e.Salary.String())

	if e.Department != nil {
		c.surface.SetValue(view.FieldDepartment, strconv.Itoa(e.Department.DepartmentID))
	} else {
		c.surface.SetValue(view.FieldDepartment, "")
	}
	if e.Position != nil {
		c.surface.SetValue(view.FieldPosition, strconv.Itoa(e.Position.PositionID))
	} else {
		c.surface.SetValue(view.FieldPosition, "")
	}

	c.surface.HideAlert(view.AlertModal)
	c.surface.Show(view.ModalEmployee)
}

// Close はモーダルを閉じます。
func (c *Controller) Close() {
	c.surface.Hide(view.ModalEmployee)
}

// Save はフォームを検証し、作成 (POST) または更新 (PUT) を発行します。
// 検証失敗はローカルのメッセージを表示するだけで、ネットワークには
// 一切触れません。成功時はモーダルを閉じ、一覧ページに成功通知を出して
// 一覧を再読み込みします。
func (c *Controller) Save(ctx context.Context) {
	form := c.readForm()

	payload, err := c.validator.Payload(form)
	if err != nil {
		c.surface.ShowAlert(view.AlertModal, err.Error(), view.AlertError)
		return
	}

	var message string
	if id, editing := form.EditingID(); editing {
		message, err = c.client.UpdateEmployee(ctx, id, payload)
	} else {
		message, err = c.client.CreateEmployee(ctx, payload)
	}

	if err != nil {
		// サーバー側の失敗。モーダルは開いたままにします。
		c.surface.ShowAlert(view.AlertModal, view.ServerMessage(err, "An error occurred."), view.AlertError)
		return
	}

	if message == "" {
		message = "Employee saved."
	}

	c.Close()
	c.surface.ShowAlert(view.AlertEmployees, message, view.AlertSuccess)
	c.list.Load(ctx)
}

func (c *Controller) populateSelections() {
	c.surface.SetOptions(view.FieldDepartment, c.lookups.DepartmentSelections())
	c.surface.SetOptions(view.FieldPosition, c.lookups.PositionSelections())
}

func (c *Controller) clearForm() {
	for _, field := range []string{
		view.FieldEmployeeID,
		view.FieldFirstName,
		view.FieldLastName,
		view.FieldEmail,
		view.FieldPhone,
		view.FieldDepartment,
		view.FieldPosition,
		view.FieldHireDate,
		view.FieldSalary,
	} {
		c.surface.SetValue(field, "")
	}
}

func (c *Controller) readForm() Form {
	return Form{
		ID:           c.surface.Value(view.FieldEmployeeID),
		FirstName:    c.surface.Value(view.FieldFirstName),
		LastName:     c.surface.Value(view.FieldLastName),
		Email:        c.surface.Value(view.FieldEmail),
		Phone:        c.surface.Value(view.FieldPhone),
		DepartmentID: c.surface.Value(view.FieldDepartment),
		PositionID:   c.surface.Value(view.FieldPosition),
		HireDate:     c.surface.Value(view.FieldHireDate),
		Salary:       c.surface.Value(view.FieldSalary),
	}
}
