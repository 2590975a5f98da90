package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	pflag "github.com/spf13/pflag"
)

// ParsePair parses "x" or "x,y". A single value applies to both axes.
func ParsePair(s string) (x, y int, err error) {
	xs, ys, found := strings.Cut(s, ",")
	x, err = strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	if !found {
		return x, x, nil
	}
	y, err = strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return x, y, nil
}

// PairValue is a flag bound to an x and a y setting.
type PairValue struct {
	x, y *int
}

var _ pflag.Value = (*PairValue)(nil)

// NewPairValue binds a flag to x and y. The current values are the defaults.
func NewPairValue(x, y *int) *PairValue {
	return &PairValue{x: x, y: y}
}

func (p *PairValue) String() string {
	if p.x == nil || p.y == nil {
		return ""
	}
	if *p.x == *p.y {
		return strconv.Itoa(*p.x)
	}
	return fmt.Sprintf("%d,%d", *p.x, *p.y)
}

// Set implements pflag.Value.
func (p *PairValue) Set(s string) error {
	x, y, err := ParsePair(s)
	if err != nil {
		return err
	}
	*p.x, *p.y = x, y
	return nil
}

// Type implements pflag.Value.
func (p *PairValue) Type() string {
	return "x[,y]"
}
