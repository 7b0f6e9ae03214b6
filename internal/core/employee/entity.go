package employee

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status は社員の在籍状態を表します。
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// DateLayout は API がやり取りする日付の書式です。
const DateLayout = "2006-01-02"

// Date は日付のみ (yyyy-MM-dd) で転送される値です。
type Date struct {
	time.Time
}

// NewDate は年月日から Date を生成します。
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate は yyyy-MM-dd 形式の文字列を Date に変換します。
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("employee: parse date %q: %w", raw, err)
	}
	return Date{Time: t}, nil
}

// String は yyyy-MM-dd 形式の文字列を返します。
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON は Date を yyyy-MM-dd の JSON 文字列として書き出します。
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON は yyyy-MM-dd の JSON 文字列から Date を復元します。
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("employee: date must be a string: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Department は部署の参照エンティティです。
type Department struct {
	DepartmentID   int    `json:"departmentId"`
	DepartmentName string `json:"departmentName,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Position は職位の参照エンティティです。
type Position struct {
	PositionID int    `json:"positionId"`
	Title      string `json:"title,omitempty"`
	PayGrade   string `json:"payGrade,omitempty"`
}

// Employee は在籍中の社員レコードです。サーバーが所有し、クライアントは
// 一覧取得のたびに丸ごと差し替わる一時的なコピーだけを保持します。
type Employee struct {
	EmployeeID int             `json:"employeeId"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone,omitempty"`
	Department *Department     `json:"department,omitempty"`
	Position   *Position       `json:"position,omitempty"`
	HireDate   Date            `json:"hireDate"`
	Salary     decimal.Decimal `json:"salary"`
	Status     Status          `json:"status,omitempty"`
}

// FullName は表示用の氏名を返します。
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// PastEmployee はアーカイブ済み社員の読み取り専用レコードです。
// サーバー側で生成され、クライアントが組み立てることはありません。
type PastEmployee struct {
	PastEmployeeID     int             `json:"pastEmployeeId"`
	OriginalEmployeeID int             `json:"originalEmployeeId"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone,omitempty"`
	Department         *Department     `json:"department,omitempty"`
	Position           *Position       `json:"position,omitempty"`
	HireDate           Date            `json:"hireDate"`
	Salary             decimal.Decimal `json:"salary"`
	TerminationDate    Date            `json:"terminationDate"`
	TerminationReason  string          `json:"terminationReason,omitempty"`
}

// FullName は表示用の氏名を返します。
func (p *PastEmployee) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Payload は作成・更新リクエストの本文です。電話番号は空のとき送信されません。
type Payload struct {
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	Department DepartmentRef   `json:"department"`
	Position   PositionRef     `json:"position"`
	HireDate   Date            `json:"hireDate"`
	Salary     decimal.Decimal `json:"salary"`
}

// DepartmentRef は ID のみで部署を参照します。
type DepartmentRef struct {
	DepartmentID int `json:"departmentId"`
}

// PositionRef は ID のみで職位を参照します。
type PositionRef struct {
	PositionID int `json:"positionId"`
}
