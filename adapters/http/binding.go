package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/devconnector/pkg/apperror"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes the body and turns validator failures into field errors.
// A field's `msg` tag overrides the default message.
func bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInvalidInput("invalid JSON body", err)
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Field() + " is invalid"
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if custom := sf.Tag.Get("msg"); custom != "" {
				msg = custom
			}
		}
		fields = append(fields, apperror.FieldError{Param: fe.Field(), Msg: msg})
	}
	return apperror.NewValidation(fields...)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts a calendar date or an RFC 3339 timestamp. Empty input
// yields the zero time.
func parseDate(param, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperror.NewValidation(apperror.FieldError{Param: param, Msg: param + " is not a valid date"})
}

func parseOptionalDate(param, raw string) (*time.Time, error) {
	t, err := parseDate(param, raw)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}
