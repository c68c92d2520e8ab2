package flowdelivery

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-transfer/internal/domain"
	"github.com/go-petr/pet-transfer/pkg/currencypkg"
)

// OTPLength is the number of digits of a one-time code.
const OTPLength = 6

// ValidOTP validates whether the field is a six digit one-time code.
var ValidOTP validator.Func = func(fl validator.FieldLevel) bool {
	otp, ok := fl.Field().Interface().(string)
	if !ok || len(otp) != OTPLength {
		return false
	}

	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// ValidPurpose validates whether the transfer purpose is supported.
var ValidPurpose validator.Func = func(fl validator.FieldLevel) bool {
	if p, ok := fl.Field().Interface().(string); ok {
		return domain.IsSupportedPurpose(p)
	}

	return false
}

// RegisterValidators registers the custom binding tags used by the requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	validations := map[string]validator.Func{
		"currency": currencypkg.ValidCurrency,
		"otp":      ValidOTP,
		"purpose":  ValidPurpose,
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}
