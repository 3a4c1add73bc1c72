package control

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToFloat coerces a program value to a scalar. Booleans are rejected.
func ToFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case Heading:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, string(v))
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotNumeric, KindName(value))
}
