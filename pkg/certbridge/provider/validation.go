package provider

import (
	"fmt"
	"regexp"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func ValidateStoreProviderRequest(req StoreProviderRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Slug, validation.Required, validation.Match(slugPattern)),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Tier, validation.Required, validation.In(model.ProviderTierFull, model.ProviderTierLimited)),
		validation.Field(&req.Mode, validation.Required, validation.In(model.ProviderModeLive, model.ProviderModeSandbox)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
