package cleaningController

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Valid bare date",
			dateStr:     "2024-01-15",
			expectError: false,
		},
		{
			name:        "Valid RFC3339 datetime",
			dateStr:     "2024-01-15T14:30:00Z",
			expectError: false,
		},
		{
			name:        "Empty string",
			dateStr:     "",
			expectError: true,
			errorMsg:    "date is required",
		},
		{
			name:        "Invalid format",
			dateStr:     "15/01/2024",
			expectError: true,
			errorMsg:    "invalid date format, expected YYYY-MM-DD or RFC3339",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDate(tt.dateStr)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				assert.True(t, result.IsZero())
			} else {
				assert.NoError(t, err)
				assert.False(t, result.IsZero())
			}
		})
	}
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("fake image bytes")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, err := decodeDataURI(encoded)
	assert.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDecodeDataURIRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "not a data URI", uri: "https://example.com/photo.jpg"},
		{name: "missing base64 marker", uri: "data:image/png,rawdata"},
		{name: "invalid base64 payload", uri: "data:image/png;base64,???"},
		{name: "empty string", uri: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeDataURI(tt.uri)
			assert.Error(t, err)
		})
	}
}

func TestLogCleaningValidation(t *testing.T) {
	controller := &CleaningController{}

	tests := []struct {
		name    string
		request LogCleaningRequest
	}{
		{
			name:    "missing mailbox id",
			request: LogCleaningRequest{Date: "2024-01-15", CleanerName: "สมชาย"},
		},
		{
			name:    "missing cleaner name",
			request: LogCleaningRequest{MailboxID: 1, Date: "2024-01-15"},
		},
		{
			name:    "missing date",
			request: LogCleaningRequest{MailboxID: 1, CleanerName: "สมชาย"},
		},
		{
			name:    "unparseable date",
			request: LogCleaningRequest{MailboxID: 1, Date: "yesterday", CleanerName: "สมชาย"},
		},
		{
			name: "form path without images",
			request: LogCleaningRequest{
				MailboxID:         1,
				Date:              "2024-01-15",
				CleanerName:       "สมชาย",
				RequireBothImages: true,
			},
		},
		{
			name: "form path with only before image",
			request: LogCleaningRequest{
				MailboxID:         1,
				Date:              "2024-01-15",
				CleanerName:       "สมชาย",
				BeforeImage:       "data:image/png;base64,aGk=",
				RequireBothImages: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := controller.LogCleaning(context.Background(), &tt.request)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestMaxCleanerNameLength(t *testing.T) {
	assert.Equal(t, 200, MaxCleanerNameLength)
}
