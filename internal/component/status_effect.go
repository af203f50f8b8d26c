// internal/component/status_effect.go
package component

// FrozenEffect indicates that an entity is frozen in place.
// While Timer > 0 the entity does not move.
type FrozenEffect struct {
	Timer float64 // How much time is left for the effect.
}
