package control

import (
	"encoding/json"
	"fmt"
)

// Named is implemented by values that report their own kind name to programs.
type Named interface {
	KindName() string
}

// KindName returns the name programs know a value's kind by.
func KindName(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case Named:
		return v.KindName()
	case bool:
		return "Boolean"
	case string:
		return "String"
	case Heading, json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "Scalar"
	}
	return fmt.Sprintf("%T", value)
}
