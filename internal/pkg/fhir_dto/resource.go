package fhir_dto

import (
	"encoding/json"
)

// Resource is an open, partially typed FHIR record. The store's resource
// shapes are heterogeneous and business fields often hide in extensions, so
// the record keeps every field as raw JSON and exposes typed accessors for
// the ones the mappers understand. Unknown fields survive a read-modify-write
// cycle untouched, which is what makes updates a merge instead of a
// wholesale replacement.
type Resource struct {
	fields map[string]json.RawMessage
}

func NewResource(resourceType string) *Resource {
	r := &Resource{fields: map[string]json.RawMessage{}}
	raw, _ := json.Marshal(resourceType)
	r.fields[fieldResourceType] = raw
	return r
}

const (
	fieldResourceType = "resourceType"
	fieldID           = "id"
	fieldExtension    = "extension"
)

func (r *Resource) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.fields = fields
	return nil
}

func (r *Resource) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.fields)
}

// Clone deep-copies the record. Snapshots taken for optimistic rollback
// must not alias the live record's buffers.
func (r *Resource) Clone() *Resource {
	clone := &Resource{fields: make(map[string]json.RawMessage, len(r.fields))}
	for key, value := range r.fields {
		buf := make(json.RawMessage, len(value))
		copy(buf, value)
		clone.fields[key] = buf
	}
	return clone
}

func (r *Resource) ResourceType() string {
	resourceType, _ := r.String(fieldResourceType)
	return resourceType
}

func (r *Resource) ID() string {
	id, _ := r.String(fieldID)
	return id
}

func (r *Resource) SetID(id string) {
	r.setJSON(fieldID, id)
}

// ClearID strips the server-assigned id, e.g. before creating a duplicate.
func (r *Resource) ClearID() {
	delete(r.fields, fieldID)
}

func (r *Resource) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

func (r *Resource) String(key string) (string, bool) {
	raw, ok := r.fields[key]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

func (r *Resource) Bool(key string) (bool, bool) {
	raw, ok := r.fields[key]
	if !ok {
		return false, false
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, false
	}
	return value, true
}

func (r *Resource) Number(key string) (float64, bool) {
	raw, ok := r.fields[key]
	if !ok {
		return 0, false
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}
	return value, true
}

// Decode unmarshals a nested field into out. Returns false when the field
// is absent or does not fit out's shape.
func (r *Resource) Decode(key string, out interface{}) bool {
	raw, ok := r.fields[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Set marshals value into the named field. The resourceType discriminant is
// immutable once assigned; attempts to rewrite it are ignored.
func (r *Resource) Set(key string, value interface{}) {
	if key == fieldResourceType && r.Has(fieldResourceType) {
		return
	}
	r.setJSON(key, value)
}

func (r *Resource) Delete(key string) {
	if key == fieldResourceType {
		return
	}
	delete(r.fields, key)
}

func (r *Resource) Extensions() []Extension {
	var extensions []Extension
	r.Decode(fieldExtension, &extensions)
	return extensions
}

func (r *Resource) SetExtensions(extensions []Extension) {
	if len(extensions) == 0 {
		delete(r.fields, fieldExtension)
		return
	}
	r.setJSON(fieldExtension, extensions)
}

func (r *Resource) setJSON(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if r.fields == nil {
		r.fields = map[string]json.RawMessage{}
	}
	r.fields[key] = raw
}
