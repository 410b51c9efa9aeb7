package card

import (
	"errors"
	"testing"
)

func TestCreateParams_Validate(t *testing.T) {
	valid := CreateParams{CardName: "Sapphire Preferred", Limit: 15000, DueDate: 5, Last4: "1234"}

	tests := []struct {
		name    string
		mutate  func(*CreateParams)
		wantErr error
	}{
		{name: "valid", mutate: func(p *CreateParams) {}},
		{name: "due day 1", mutate: func(p *CreateParams) { p.DueDate = 1 }},
		{name: "due day 31", mutate: func(p *CreateParams) { p.DueDate = 31 }},
		{name: "due day 0", mutate: func(p *CreateParams) { p.DueDate = 0 }, wantErr: ErrInvalidDueDay},
		{name: "due day 32", mutate: func(p *CreateParams) { p.DueDate = 32 }, wantErr: ErrInvalidDueDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestCreateParams_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		params CreateParams
	}{
		{name: "missing name", params: CreateParams{Limit: 100, DueDate: 5, Last4: "1234"}},
		{name: "zero limit", params: CreateParams{CardName: "Amex", Limit: 0, DueDate: 5, Last4: "1234"}},
		{name: "negative limit", params: CreateParams{CardName: "Amex", Limit: -10, DueDate: 5, Last4: "1234"}},
		{name: "short last4", params: CreateParams{CardName: "Amex", Limit: 100, DueDate: 5, Last4: "123"}},
		{name: "alpha last4", params: CreateParams{CardName: "Amex", Limit: 100, DueDate: 5, Last4: "12ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

func TestUpdateParams_Validate(t *testing.T) {
	badDay := 40
	goodDay := 15
	badLast4 := "12345"

	if err := (&UpdateParams{DueDate: &goodDay}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (&UpdateParams{}).Validate(); err != nil {
		t.Errorf("Validate() on empty update unexpected error: %v", err)
	}
	if err := (&UpdateParams{DueDate: &badDay}).Validate(); !errors.Is(err, ErrInvalidDueDay) {
		t.Errorf("Validate() error = %v, want ErrInvalidDueDay", err)
	}
	if err := (&UpdateParams{Last4: &badLast4}).Validate(); err == nil {
		t.Error("Validate() with bad last4 expected error, got nil")
	}
}
