package component

// Health: компонент здоровья. Инвариант: 0 ≤ Value ≤ Max.
type Health struct {
	Value float64
	Max   float64
}

// Fraction возвращает долю оставшегося здоровья
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}
