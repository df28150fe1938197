package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNameNationalID(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantFullName   string
		wantNationalID string
		wantOk         bool
	}{
		{
			name:           "two tokens",
			text:           "Ali 1234567890",
			wantFullName:   "Ali",
			wantNationalID: "1234567890",
			wantOk:         true,
		},
		{
			name:           "multi word name",
			text:           "علی رضایی 1234567890",
			wantFullName:   "علی رضایی",
			wantNationalID: "1234567890",
			wantOk:         true,
		},
		{
			name:           "extra whitespace",
			text:           "  Ali   Rezaei   1234567890  ",
			wantFullName:   "Ali Rezaei",
			wantNationalID: "1234567890",
			wantOk:         true,
		},
		{
			name:   "single token",
			text:   "1234567890",
			wantOk: false,
		},
		{
			name:   "empty",
			text:   "   ",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fullName, nationalID, ok := ParseNameNationalID(tt.text)
			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.wantFullName, fullName)
			assert.Equal(t, tt.wantNationalID, nationalID)
		})
	}
}
