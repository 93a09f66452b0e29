package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sureshkalyan1000/CableOpreator/internal/domain"
)

// Amount is a monetary value that accepts either a JSON number or a numeric
// string ("100", "99.50") on input. Anything else fails with
// domain.ErrInvalidAmount, mirroring the loose coercion clients rely on.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, string(data))
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
