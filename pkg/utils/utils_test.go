package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmptyLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain lines",
			text: "20\n3",
			want: []string{"20", "3"},
		},
		{
			name: "blank lines and padding dropped",
			text: "\n  20  \n\n3\n  \n",
			want: []string{"20", "3"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NonEmptyLines(tt.text))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{
			name:  "integer value",
			value: 50000,
			want:  "50000",
		},
		{
			name:  "decimal value",
			value: 2.5,
			want:  "2.5",
		},
		{
			name:  "no trailing zeros",
			value: 10.0,
			want:  "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.value))
		})
	}
}
