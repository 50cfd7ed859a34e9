package catalog

import (
	"fmt"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateCreateCanonicalRequest(req CreateCanonicalRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Vendor, validation.Required),
		validation.Field(&req.Validation, validation.In(model.ValidationDV, model.ValidationOV, model.ValidationEV)),
		validation.Field(&req.Class, validation.In(
			model.ProductClassSSL,
			model.ProductClassWildcard,
			model.ProductClassMultiDomain,
			model.ProductClassCodeSigning,
			model.ProductClassEmail,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
