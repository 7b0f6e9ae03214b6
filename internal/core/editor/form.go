package editor

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/ems-console/internal/core/employee"
)

// Form は編集フォームの型付きビューモデルです。描画境界から読み取った
// 生の文字列を保持し、検証を経て API ペイロードに変換されます。
type Form struct {
	ID           string
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Email        string `validate:"required,simple_email"`
	Phone        string
	DepartmentID string `validate:"required"`
	PositionID   string `validate:"required"`
	HireDate     string `validate:"required"`
	Salary       string `validate:"required"`
}

// EditingID は編集対象の ID を返します。ID が無ければ追加モードです。
func (f Form) EditingID() (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(f.ID))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// local@domain.tld の簡易判定です。
var simpleEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormValidator はフォームの検証とペイロードへの変換を行います。
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator は FormValidator を生成します。
func NewFormValidator() *FormValidator {
	v := validator.New()
	// RegisterValidation は正規の名前とパターンであれば失敗しません。
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailPattern.MatchString(fl.Field().String())
	})
	return &FormValidator{validate: v}
}

// Payload はフォームを検証し、API へ送るペイロードに変換します。
// 返されるエラーのメッセージはそのまま画面に表示できます。
func (fv *FormValidator) Payload(f Form) (employee.Payload, error) {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)

	if err := fv.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return employee.Payload{}, errors.New(validationMessage(verrs[0]))
		}
		return employee.Payload{}, err
	}

	hireDate, err := employee.ParseDate(strings.TrimSpace(f.HireDate))
	if err != nil {
		return employee.Payload{}, errors.New("Hire date must be a valid date (yyyy-MM-dd).")
	}

	salary, err := decimal.NewFromString(strings.TrimSpace(f.Salary))
	if err != nil || !salary.IsPositive() {
		return employee.Payload{}, errors.New("Salary must be a positive number.")
	}

	departmentID, err := strconv.Atoi(f.DepartmentID)
	if err != nil || departmentID <= 0 {
		return employee.Payload{}, errors.New("Please select a department.")
	}

	positionID, err := strconv.Atoi(f.PositionID)
	if err != nil || positionID <= 0 {
		return employee.Payload{}, errors.New("Please select a position.")
	}

	payload := employee.Payload{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Department: employee.DepartmentRef{DepartmentID: departmentID},
		Position:   employee.PositionRef{PositionID: positionID},
		HireDate:   hireDate,
		Salary:     salary,
	}

	// 空の電話番号はペイロードから除外されます。
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		payload.Phone = &phone
	}

	return payload, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "First name is required."
	case "LastName":
		return "Last name is required."
	case "Email":
		if fe.Tag() == "simple_email" {
			return "Please enter a valid email address."
		}
		return "Email is required."
	case "DepartmentID":
		return "Please select a department."
	case "PositionID":
		return "Please select a position."
	case "HireDate":
		return "Hire date is required."
	case "Salary":
		return "Salary is required."
	}
	return "Please fill in all required fields."
}
