package patch

// Coalesce merges one optional PATCH field: the pointed-to value when the
// client sent the field, otherwise the current stored value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
