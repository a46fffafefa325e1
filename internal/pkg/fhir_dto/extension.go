package fhir_dto

import "strings"

// Extension is the open-ended side channel the store uses to smuggle domain
// scalars that have no first-class field. Exactly one value field is
// expected to be set per entry.
type Extension struct {
	Url          string   `json:"url,omitempty"`
	ValueString  string   `json:"valueString,omitempty"`
	ValueCode    string   `json:"valueCode,omitempty"`
	ValueDecimal *float64 `json:"valueDecimal,omitempty"`
	ValueInteger *int     `json:"valueInteger,omitempty"`
	ValueBoolean *bool    `json:"valueBoolean,omitempty"`
}

// FindExtension returns the first extension whose url contains token.
// Matching is a case-sensitive substring check: a loose legacy convention
// kept for compatibility with data already in the store. First match in
// array order wins; callers must not rely on any ordering beyond that.
func FindExtension(r *Resource, token string) (Extension, bool) {
	for _, ext := range r.Extensions() {
		if strings.Contains(ext.Url, token) {
			return ext, true
		}
	}
	return Extension{}, false
}

func ReadExtensionString(r *Resource, token, defaultValue string) string {
	ext, ok := FindExtension(r, token)
	if !ok || ext.ValueString == "" {
		return defaultValue
	}
	return ext.ValueString
}

func ReadExtensionCode(r *Resource, token, defaultValue string) string {
	ext, ok := FindExtension(r, token)
	if !ok || ext.ValueCode == "" {
		return defaultValue
	}
	return ext.ValueCode
}

func ReadExtensionDecimal(r *Resource, token string, defaultValue float64) float64 {
	ext, ok := FindExtension(r, token)
	if !ok || ext.ValueDecimal == nil {
		return defaultValue
	}
	return *ext.ValueDecimal
}

func ReadExtensionInt(r *Resource, token string, defaultValue int) int {
	ext, ok := FindExtension(r, token)
	if !ok || ext.ValueInteger == nil {
		return defaultValue
	}
	return *ext.ValueInteger
}

func ReadExtensionBool(r *Resource, token string, defaultValue bool) bool {
	ext, ok := FindExtension(r, token)
	if !ok || ext.ValueBoolean == nil {
		return defaultValue
	}
	return *ext.ValueBoolean
}

// WriteExtension appends ext, replacing the first existing entry whose url
// contains token so repeated writes stay idempotent: one entry per token,
// latest value wins.
func WriteExtension(r *Resource, token string, ext Extension) {
	extensions := r.Extensions()
	for i := range extensions {
		if strings.Contains(extensions[i].Url, token) {
			extensions[i] = ext
			r.SetExtensions(extensions)
			return
		}
	}
	r.SetExtensions(append(extensions, ext))
}

func Float64Ptr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }

func BoolPtr(v bool) *bool { return &v }
