// Package queryparam はクエリパラメータの束縛と検証を行います。
// 配列は OpenAPI の form/explode 形式（?ticker_name=A&ticker_name=B）で受け取ります。
package queryparam

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// MaxValueLength は銘柄名・市場名1件あたりの最大文字数です。
const MaxValueLength = 64

var validate = validator.New(validator.WithRequiredStructEnabled())

// Error は不正なクエリパラメータを表します。HTTPでは400として扱います。
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Strings は繰り返し指定可能な文字列パラメータを返します。未指定なら nil です。
func Strings(q url.Values, name string) ([]string, error) {
	// 任意パラメータは生成コードと同じく二重ポインタで渡す
	var bound *[]string
	if err := runtime.BindQueryParameter("form", true, false, name, q, &bound); err != nil {
		return nil, &Error{Name: name, Err: err}
	}
	var out []string
	if bound != nil {
		out = *bound
	}
	if err := validate.Var(out, fmt.Sprintf("omitempty,dive,max=%d", MaxValueLength)); err != nil {
		return nil, &Error{Name: name, Err: describe(err)}
	}
	return out, nil
}

// Date は YYYY-MM-DD 形式の日付パラメータをUTCの0時として返します。未指定なら nil です。
func Date(q url.Values, name string) (*time.Time, error) {
	var d *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, name, q, &d); err != nil {
		return nil, &Error{Name: name, Err: err}
	}
	if d == nil {
		return nil, nil
	}
	t := time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &t, nil
}

// describe は validator のエラーを利用者向けの短い文に変換します。
func describe(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "max":
		return fmt.Errorf("value %q exceeds %s characters", fe.Value(), fe.Param())
	default:
		return fmt.Errorf("value %q failed %s validation", fe.Value(), fe.Tag())
	}
}
