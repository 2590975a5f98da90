package cliconfig

import "testing"

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr bool
	}{
		{in: "16", x: 16, y: 16},
		{in: "16,8", x: 16, y: 8},
		{in: " 4 , 2 ", x: 4, y: 2},
		{in: "0,2", x: 0, y: 2},
		{in: "", wantErr: true},
		{in: "a", wantErr: true},
		{in: "4,", wantErr: true},
		{in: "4,b", wantErr: true},
	}

	for _, tt := range tests {
		x, y, err := ParsePair(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePair(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if x != tt.x || y != tt.y {
			t.Errorf("ParsePair(%q) = %d,%d, want %d,%d", tt.in, x, y, tt.x, tt.y)
		}
	}
}

func TestPairValue(t *testing.T) {
	x, y := 200, 200
	p := NewPairValue(&x, &y)

	if p.String() != "200" {
		t.Errorf("String() = %q, want 200", p.String())
	}
	if err := p.Set("100,300"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if x != 100 || y != 300 {
		t.Errorf("x,y = %d,%d, want 100,300", x, y)
	}
	if p.String() != "100,300" {
		t.Errorf("String() = %q, want 100,300", p.String())
	}
	if err := p.Set("nope"); err == nil {
		t.Error("Set(nope) expected error")
	}
	if x != 100 || y != 300 {
		t.Errorf("failed Set changed values to %d,%d", x, y)
	}
	if p.Type() != "x[,y]" {
		t.Errorf("Type() = %q", p.Type())
	}
}
