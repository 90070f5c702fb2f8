package request

import (
	"errors"
	"sync"

	"casegate/internal/domain/unlock"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation("contentid", func(fl validator.FieldLevel) bool {
			return unlock.IsValidContentID(fl.Field().String())
		})
	})
	return registerErr
}

// FailedTags lists the validation tags err failed on, nil if err is not a
// validation error.
func FailedTags(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	return tags
}
