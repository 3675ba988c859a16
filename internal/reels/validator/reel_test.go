package validator

import (
	"errors"
	"strings"
	"testing"

	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/model"
)

func TestReelValidator(t *testing.T) {
	v := NewReelValidator(logger.Discard())

	tests := []struct {
		name      string
		input     model.ReelCreate
		wantField string
	}{
		{"valid", model.ReelCreate{URL: "https://www.instagram.com/reel/ABC/"}, ""},
		{"no shape check", model.ReelCreate{URL: "not a url"}, ""},
		{"missing url", model.ReelCreate{Title: "x"}, "url"},
		{"long title", model.ReelCreate{URL: "u", Title: strings.Repeat("a", 201)}, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) || len(verrs) != 1 || verrs[0].Field != tt.wantField {
				t.Errorf("Validate() = %v, want error on %s", err, tt.wantField)
			}
		})
	}
}
