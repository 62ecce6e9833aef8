// SPDX-License-Identifier: EPL-2.0

package palette

import (
	"errors"
	"testing"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Style
		wantErr error
	}{
		{"normal", Normal, nil},
		{"Inactive", Inactive, nil},
		{"SELECTED", Selected, nil},
		{"primary", Primary, nil},
		{"active", 0, ErrUnknownStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStyle(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseStyle() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyle_String(t *testing.T) {
	t.Parallel()

	if Selected.String() != "selected" {
		t.Errorf("Selected.String() = %q", Selected.String())
	}
	if Style(9).String() != "Style(9)" {
		t.Errorf("Style(9).String() = %q", Style(9).String())
	}
	if len(Styles()) != int(StyleCount) {
		t.Errorf("len(Styles()) = %d, want %d", len(Styles()), StyleCount)
	}
}

func TestScheme_Params(t *testing.T) {
	t.Parallel()

	s := Scheme{Primary: StyleParams{HueOffset: 12}}

	p, err := s.Params(Primary)
	if err != nil || p.HueOffset != 12 {
		t.Errorf("Params(Primary) = %+v, %v", p, err)
	}
	if _, err := s.Params(Style(-1)); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Params(-1) error = %v, want ErrUnknownStyle", err)
	}
}
