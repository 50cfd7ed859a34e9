package model_test

import (
	"testing"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/stretchr/testify/assert"
)

func TestProviderAlerting(t *testing.T) {
	provider := model.Provider{Slug: "gogetssl"}
	assert.False(t, provider.Alerting())

	provider.ErrorCount = model.AlertThreshold - 1
	assert.False(t, provider.Alerting())

	provider.ErrorCount = model.AlertThreshold
	assert.True(t, provider.Alerting())

	provider.ErrorCount = model.AlertThreshold + 2
	assert.True(t, provider.Alerting())
}
