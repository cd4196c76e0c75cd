// internal/types/types.go
package types

// EntityID: идентификатор сущности. Выдаётся по возрастанию, поэтому
// сортировка по ID совпадает с порядком создания.
type EntityID uint64
