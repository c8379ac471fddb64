package handler

import (
	"errors"
	"reflect"
	"strings"

	"partnerhub/internal/models"
	"partnerhub/internal/pkg/httpx"

	"github.com/go-playground/validator/v10"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
)

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// "enum" accepts the closed value sets declared in models
	//nolint:errcheck
	v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && value.Valid()
	})
	//nolint:errcheck
	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
	return &requestValidator{v}
}

func (rv *requestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return errorx.Wrap(err, errorx.Invalid)
	}

	fields := make(httpx.FieldErrors, len(violations))
	for _, violation := range violations {
		fields[violation.Field()] = violation.Tag()
	}
	return httpx.NewValidation(fields)
}
