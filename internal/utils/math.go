// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Distance: евклидово расстояние между точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// AngleTo возвращает угол направления из (x1, y1) на (x2, y2)
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff возвращает кратчайшую разницу между углами, в диапазоне [0, π]
func AngleDiff(a, b float64) float64 {
	return math.Abs(NormalizeAngle(a - b))
}

// LerpAngle выполняет интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	diff := NormalizeAngle(to - from)
	return NormalizeAngle(from + diff*t)
}

// MoveTowards сдвигает точку к цели не дальше чем на step.
// Возвращает новую позицию и признак того, что цель достигнута.
func MoveTowards(x, y, tx, ty, step float64) (float64, float64, bool) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return tx, ty, true
	}
	return x + dx/dist*step, y + dy/dist*step, false
}
