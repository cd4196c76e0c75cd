// pkg/utils/math.go
package utils

// Number: числовые типы, с которыми работают хелперы
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp ограничивает x отрезком [lo, hi].
func Clamp[T Number](x, lo, hi T) T {
	return max(lo, min(hi, x))
}
