// internal/types/types.go
package types

// EntityID identifies a turret or an enemy within one session.
type EntityID uint64
