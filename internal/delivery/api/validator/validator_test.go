package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type selection struct {
	OrderID  int    `json:"orderId" validate:"required,gt=0"`
	Supplier string `json:"supplier" validate:"required"`
	Cost     string `json:"cost" validate:"required,decimal"`
	Field    string `json:"field" validate:"omitempty,oneof=status search"`
}

func TestCustomValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   selection
		wantErr string
	}{
		{
			name:  "valid",
			input: selection{OrderID: 1, Supplier: "Keystone", Cost: " 710.50 "},
		},
		{
			name:    "missing fields use json names",
			input:   selection{Cost: "1"},
			wantErr: "orderId is required; supplier is required",
		},
		{
			name:    "not a decimal",
			input:   selection{OrderID: 1, Supplier: "Keystone", Cost: "cheap"},
			wantErr: "cost must be a decimal number",
		},
		{
			name:    "oneof",
			input:   selection{OrderID: 1, Supplier: "Keystone", Cost: "1", Field: "vendor"},
			wantErr: "field must be one of status search",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
