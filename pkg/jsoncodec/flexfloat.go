package jsoncodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexFloat decodes from a JSON number or a numeric string ("4.5").
// NaN and infinities are rejected.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return f.set(n)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected number or numeric string, got %s", data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid numeric string %q: %w", s, err)
	}

	return f.set(v)
}

func (f *FlexFloat) set(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("non-finite number %v", v)
	}
	*f = FlexFloat(v)
	return nil
}

// Ptr returns the value as *float64, nil when f is nil.
func (f *FlexFloat) Ptr() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}
