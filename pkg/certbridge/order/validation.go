package order

import (
	"fmt"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateCreateOrderRequest(req CreateOrderRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.OwnerID, validation.Required),
		validation.Field(&req.ServiceID, validation.Required),
		validation.Field(&req.ProviderSlug, validation.Required),
		validation.Field(&req.ProductCode, validation.Required),
		validation.Field(&req.Domain, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
