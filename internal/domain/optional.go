package domain

// Optional is a tri-state field used by partial updates:
// absent (Set == false), explicit null (Set, Value == nil) or a value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that is explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the field was provided with a null value.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}
