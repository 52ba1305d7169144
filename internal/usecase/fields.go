// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// FieldMap collects the subset of an update input that was explicitly and
// non-trivially provided. Nil pointers (absent fields) and empty strings
// never make it in, which is what guarantees partial-update semantics:
// an accidental empty value can never overwrite stored data.
type FieldMap map[string]any

// SetString records the field when it is present and not empty.
func (f FieldMap) SetString(key string, v *string) {
	if v != nil && *v != "" {
		f[key] = *v
	}
}

// SetFloat records the field when it is present.
func (f FieldMap) SetFloat(key string, v *float64) {
	if v != nil {
		f[key] = *v
	}
}

// SetInt records the field when it is present.
func (f FieldMap) SetInt(key string, v *int) {
	if v != nil {
		f[key] = *v
	}
}

// SetBool records the field when it is present.
func (f FieldMap) SetBool(key string, v *bool) {
	if v != nil {
		f[key] = *v
	}
}

// SetStrings records the field when the slice is present and non-empty.
func (f FieldMap) SetStrings(key string, v []string) {
	if len(v) > 0 {
		f[key] = v
	}
}
