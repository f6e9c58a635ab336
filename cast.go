package plot

import (
	"errors"
	"fmt"
)

var errOddXY = errors.New("invalid XY values, length is not divisible by 2")

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func toFloats[T number](x []T) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = float64(x[i])
	}
	return out
}

// cast copies any slice of numbers into a new []float64 so that the caller's
// data is never aliased by a graph.
func cast(x any) ([]float64, error) {
	switch x := x.(type) {
	case []float64:
		return toFloats(x), nil
	case []float32:
		return toFloats(x), nil
	case []int:
		return toFloats(x), nil
	case []int64:
		return toFloats(x), nil
	case []int32:
		return toFloats(x), nil
	case []int16:
		return toFloats(x), nil
	case []int8:
		return toFloats(x), nil
	case []uint:
		return toFloats(x), nil
	case []uint64:
		return toFloats(x), nil
	case []uint32:
		return toFloats(x), nil
	case []uint16:
		return toFloats(x), nil
	case []uint8:
		return toFloats(x), nil
	}
	return nil, fmt.Errorf("invalid type, slice of numbers expected but have %T", x)
}
