package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// цифры, пробелы, скобки, плюс и дефис, 7–20 символов
var phoneRe = regexp.MustCompile(`^[0-9+\s()-]{7,20}$`)

// Register вешает кастомные правила на валидатор gin и заставляет его
// отдавать в ошибках json-имена полей вместо имён из Go-структур.
// Вызывать один раз на старте (и в тестах хендлеров).
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("gin binding validator engine is not *validator.Validate")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}); err != nil {
		panic("register phone validation: " + err.Error())
	}
}
