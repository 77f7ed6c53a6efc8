//go:build debug_vvector

package vvector

// debugValidate will call Validate on the provided object and panics if any
// errors are returned. This method no-ops unless the debug_vvector build tag
// is present.
func debugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
