package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type sample struct {
	Risk     string  `binding:"omitempty,risk_profile"`
	Priority *string `binding:"omitempty,priority_level"`
	Type     string  `binding:"required,asset_type"`
}

func TestRegister(t *testing.T) {
	Register()
	if _, ok := binding.Validator.Engine().(*validator.Validate); !ok {
		t.Fatal("expected go-playground validator engine")
	}

	high, bogus := "high", "urgent"
	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{Risk: "aggressive", Priority: &high, Type: "mutual_fund"}, false},
		{"optional fields absent", sample{Type: "cash"}, false},
		{"bad risk", sample{Risk: "reckless", Type: "stock"}, true},
		{"bad priority", sample{Priority: &bogus, Type: "stock"}, true},
		{"bad asset type", sample{Type: "etf"}, true},
		{"missing asset type", sample{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
