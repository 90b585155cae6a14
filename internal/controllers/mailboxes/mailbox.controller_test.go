package mailboxController

import (
	"context"
	"testing"

	"postbox/internal/listview"
	"postbox/internal/logger"
	. "postbox/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCreateRequest() *CreateMailboxRequest {
	return &CreateMailboxRequest{
		PostOffice:   "ที่ทำการไปรษณีย์ตาก",
		PostalCode:   "63000",
		Jurisdiction: "ปจ.ตาก",
		MailboxType:  MailboxTypeA,
		Landmark:     "หน้าตลาดสด",
		Lat:          decimalPtr("16.8839"),
		Lng:          decimalPtr("99.1258"),
	}
}

func TestCreateValidation(t *testing.T) {
	controller := &MailboxController{}

	tests := []struct {
		name   string
		mutate func(*CreateMailboxRequest)
	}{
		{
			name:   "missing post office",
			mutate: func(r *CreateMailboxRequest) { r.PostOffice = "" },
		},
		{
			name:   "unknown post office",
			mutate: func(r *CreateMailboxRequest) { r.PostOffice = "ที่ทำการไปรษณีย์ไม่มีจริง" },
		},
		{
			name:   "postal code too short",
			mutate: func(r *CreateMailboxRequest) { r.PostalCode = "630" },
		},
		{
			name:   "postal code non-numeric",
			mutate: func(r *CreateMailboxRequest) { r.PostalCode = "63ooo" },
		},
		{
			name:   "missing jurisdiction",
			mutate: func(r *CreateMailboxRequest) { r.Jurisdiction = "" },
		},
		{
			name:   "unknown jurisdiction",
			mutate: func(r *CreateMailboxRequest) { r.Jurisdiction = "ปจ.ไม่มีจริง" },
		},
		{
			name:   "invalid mailbox type",
			mutate: func(r *CreateMailboxRequest) { r.MailboxType = "x" },
		},
		{
			name:   "lat without lng",
			mutate: func(r *CreateMailboxRequest) { r.Lng = nil },
		},
		{
			name:   "lng without lat",
			mutate: func(r *CreateMailboxRequest) { r.Lat = nil },
		},
		{
			name:   "lat out of range",
			mutate: func(r *CreateMailboxRequest) { r.Lat = decimalPtr("91") },
		},
		{
			name:   "lng out of range",
			mutate: func(r *CreateMailboxRequest) { r.Lng = decimalPtr("181") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := controller.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidationAcceptsEmptyOptionalFields(t *testing.T) {
	// Coordinates, type and landmark are optional; only their combination
	// rules are enforced.
	controller := &MailboxController{}
	log := logger.New("mailboxControllerTest")

	err := controller.validateFields(
		log,
		"ที่ทำการไปรษณีย์ตาก",
		"63000",
		"ปจ.ตาก",
		"",
		"",
		nil,
		nil,
	)

	assert.NoError(t, err)
}

func TestUpdateValidation(t *testing.T) {
	controller := &MailboxController{}

	req := &UpdateMailboxRequest{
		PostOffice:   "ที่ทำการไปรษณีย์ตาก",
		PostalCode:   "63000",
		Jurisdiction: "ปจ.ตาก",
	}

	_, err := controller.Update(context.Background(), 0, req)
	assert.ErrorIs(t, err, ErrValidation)

	req.PostalCode = "abcde"
	_, err = controller.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetViewValidation(t *testing.T) {
	controller := &MailboxController{}

	_, err := controller.GetView(context.Background(), listview.ViewState{
		SortColumn: "nope",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = controller.GetView(context.Background(), listview.ViewState{
		SortColumn:    listview.SortPostOffice,
		SortDirection: "sideways",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
