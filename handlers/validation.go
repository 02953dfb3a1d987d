package handlers

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// clockSkew is how far in the past a requested instant may lie and still count
// as present.
const clockSkew = time.Minute

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags used by request payloads.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notpast", notPast)
	})
}

// notPast accepts instants that are now or in the future.
func notPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(time.Now().Add(-clockSkew))
}
