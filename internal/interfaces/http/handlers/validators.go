package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator engine.
// Field errors report the json name of the field.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		err = v.RegisterValidation("subscription_status", validateSubscriptionStatus)
	})
	return err
}

func validateSubscriptionStatus(fl validator.FieldLevel) bool {
	_, err := vo.ParseSubscriptionStatus(fl.Field().String())
	return err == nil
}
