package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"frontdesk/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("payment_status", func(fl validator.FieldLevel) bool {
		return domain.PaymentStatus(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("room_kind", func(fl validator.FieldLevel) bool {
		return domain.RoomKind(fl.Field().String()).Valid()
	})
}

// Validate struct fields; returns field -> failed tag, or nil when valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
