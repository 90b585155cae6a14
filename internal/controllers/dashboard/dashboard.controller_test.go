package dashboardController

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOverviewRejectsUnknownJurisdiction(t *testing.T) {
	controller := &DashboardController{}

	_, err := controller.GetOverview(context.Background(), "ปจ.ไม่มีจริง")

	assert.ErrorIs(t, err, ErrValidation)
}
