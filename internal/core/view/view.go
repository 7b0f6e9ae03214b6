// Package view はコントローラーが書き込む描画境界を定義します。
// 実際の画面 (DOM やターミナル) はこのキー指向のインターフェースの背後にあり、
// コントローラーはフィールド値の読み書きと領域の表示制御だけを行います。
package view

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/ems-console/internal/core/employee"
)

// 画面領域の識別子です。
const (
	ScreenLogin   = "loginScreen"
	ScreenApp     = "appScreen"
	ModalEmployee = "employeeModal"
	ModalDetail   = "viewModal"
	ModalArchive  = "deleteModal"
)

// アラート領域の識別子です。
const (
	AlertLogin     = "loginError"
	AlertEmployees = "employeeAlert"
	AlertModal     = "modalAlert"
)

// フォームフィールドの識別子です。
const (
	FieldLoginUsername    = "loginUsername"
	FieldLoginPassword    = "loginPassword"
	FieldSearchName       = "searchName"
	FieldSearchDepartment = "searchDept"
	FieldSearchPosition   = "searchPos"
	FieldSearchHireDate   = "searchDate"
	FieldEmployeeID       = "empId"
	FieldFirstName        = "empFirstName"
	FieldLastName         = "empLastName"
	FieldEmail            = "empEmail"
	FieldPhone            = "empPhone"
	FieldDepartment       = "empDepartment"
	FieldPosition         = "empPosition"
	FieldHireDate         = "empHireDate"
	FieldSalary           = "empSalary"
	FieldArchiveReason    = "deleteReason"
)

// テキスト領域の識別子です。
const (
	TextSidebarUsername = "sidebarUsername"
	TextSidebarRole     = "sidebarRole"
	TextUserAvatar      = "userAvatar"
	TextStatTotal       = "statTotal"
	TextStatDepartments = "statDepts"
	TextStatPast        = "statPast"
	TextModalTitle      = "modalTitle"
	TextSaveButton      = "saveBtn"
	TextArchiveName     = "deleteEmpName"
	TextLoginButton     = "loginBtnText"
)

// 表・詳細の描画先の識別子です。
const (
	RegionRecent    = "recentList"
	RegionEmployees = "employeeList"
	RegionPast      = "pastList"
	RegionDetail    = "viewModalBody"
)

// 表示制御されるボタンの識別子です。
const (
	ButtonLogin       = "loginBtn"
	ButtonAddEmployee = "addEmployeeBtn"
)

// AlertKind はアラートの種別を表します。
type AlertKind string

const (
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
)

// Action は一覧行に表示される操作です。ロールに応じて増減します。
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionArchive Action = "archive"
)

// Option は選択コントロールの一項目です。
type Option struct {
	Value string
	Label string
}

// Row は表の一行です。
type Row struct {
	Cells   []string
	Actions []Action
}

// Table は表形式の描画内容です。
type Table struct {
	Columns []string
	Rows    []Row
	Empty   string
}

// Field は詳細表示の一項目です。
type Field struct {
	Label string
	Value string
}

// Detail は単一レコードの読み取り専用表示です。
type Detail struct {
	Title  string
	Fields []Field
}

// Surface は描画境界です。コントローラーはこのインターフェース越しにのみ
// 画面とやり取りします。
type Surface interface {
	Value(field string) string
	SetValue(field, value string)
	SetText(id, text string)
	SetOptions(id string, options []Option)
	Show(id string)
	Hide(id string)
	ShowAlert(id, message string, kind AlertKind)
	HideAlert(id string)
	RenderTable(id string, table Table)
	RenderDetail(id string, detail Detail)
}

// Placeholder は値が無いセルの表示です。
const Placeholder = "—"

// OrPlaceholder は空文字列をプレースホルダーに置き換えます。
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

const displayDateLayout = "02 Jan 2006"

// FormatDate は日付を表示用 (02 Jan 2006) に整形します。ゼロ値は
// プレースホルダーとして扱います。
func FormatDate(d employee.Date) string {
	if d.IsZero() {
		return Placeholder
	}
	return d.Format(displayDateLayout)
}

// FormatCurrency は給与を LKR 表記 (小数 2 桁・3 桁区切り) に整形します。
func FormatCurrency(v decimal.Decimal) string {
	s := v.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return "LKR " + sign + b.String() + "." + fracPart
}

type serverMessenger interface {
	ServerMessage() string
}

// ServerMessage はエラーからサーバー提供のメッセージを取り出します。
// 見つからない場合は fallback を返します。サーバーの文言をそのまま優先
// して表示します。
func ServerMessage(err error, fallback string) string {
	var m serverMessenger
	if errors.As(err, &m) {
		if msg := m.ServerMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
