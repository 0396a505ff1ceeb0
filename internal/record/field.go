package record

// Field is a value that is either invalid or carries a meaningful value.
// The value can only be reached together with its validity.
type Field[T any] struct {
	value T
	valid bool
}

// Valid returns a field holding v.
func Valid[T any](v T) Field[T] {
	return Field[T]{value: v, valid: true}
}

// Invalid returns a field without a value.
func Invalid[T any]() Field[T] {
	return Field[T]{}
}

// Get returns the value and whether it is valid. The zero value of T is
// returned for invalid fields.
func (f Field[T]) Get() (T, bool) {
	if !f.valid {
		var zero T
		return zero, false
	}
	return f.value, true
}

// IsValid reports whether the field carries a value.
func (f Field[T]) IsValid() bool {
	return f.valid
}

// Format applies fn to the value of a valid field and returns "" otherwise.
func (f Field[T]) Format(fn func(T) string) string {
	if !f.valid {
		return ""
	}
	return fn(f.value)
}
