// File: api/schemas/records.go
package schemas

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RecordType is the explicit discriminator for loaded requirement records.
// The loader supplies it alongside every record collection; the engine never
// guesses a record's type from its field shape.
type RecordType string

// Constants for the record types known to the engine. Types outside this set
// still participate in the dependency graph (as plain nodes) but have no
// criteria catalog and are skipped during maturity evaluation.
const (
	RecordTypeBusinessRequirement RecordType = "business-requirement"
	RecordTypeBusinessGoal        RecordType = "business-goal"
	RecordTypeBusinessRule        RecordType = "business-rule"
	RecordTypeSecurityPolicy      RecordType = "security-policy"
	RecordTypeActor               RecordType = "actor"
	RecordTypeUseCase             RecordType = "use-case"
	RecordTypeUseCaseStep         RecordType = "use-case-step"
	RecordTypeDataRequirement     RecordType = "data-requirement"
	RecordTypeScreen              RecordType = "screen"
	RecordTypeScreenFlow          RecordType = "screen-flow"
	RecordTypeValidationRule      RecordType = "validation-rule"
)

// KnownRecordTypes returns the record types in their canonical iteration
// order. Every place that walks "all types" uses this order so that output
// is reproducible run to run.
func KnownRecordTypes() []RecordType {
	return []RecordType{
		RecordTypeBusinessRequirement,
		RecordTypeBusinessGoal,
		RecordTypeBusinessRule,
		RecordTypeSecurityPolicy,
		RecordTypeActor,
		RecordTypeUseCase,
		RecordTypeDataRequirement,
		RecordTypeScreen,
		RecordTypeScreenFlow,
		RecordTypeValidationRule,
	}
}

// Record is one loaded requirement record. ID and Name are the two identity
// fields every record type mandates; everything else lives in Fields exactly
// as decoded from the source file.
//
// Absence semantics matter here: a key missing from Fields means the author
// never wrote it, while a key holding "" or an empty list means it was
// written but left empty. Several criteria distinguish the two, so accessors
// always return a presence flag instead of collapsing to a zero value.
type Record struct {
	ID     string         `json:"id" yaml:"id"`
	Name   string         `json:"name" yaml:"name"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// RecordFromMap builds a Record from a decoded document map. The identity
// keys are lifted out of the map; the remainder is kept verbatim as Fields.
// The input map is not retained or mutated.
func RecordFromMap(doc map[string]any) Record {
	rec := Record{Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case "id":
			rec.ID, _ = v.(string)
		case "name":
			rec.Name, _ = v.(string)
		default:
			rec.Fields[k] = v
		}
	}
	return rec
}

// HasField reports whether the record carries the named field at all,
// regardless of its value.
func (r Record) HasField(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// StringField returns the named field as a string. The second return value
// is false when the field is absent or not a string.
func (r Record) StringField(name string) (string, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ListField returns the named field as a generic list. Absent or non-list
// fields yield (nil, false).
func (r Record) ListField(name string) ([]any, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// MapListField returns the named field as a list of maps (e.g. use-case
// steps). List entries that are not maps are dropped.
func (r Record) MapListField(name string) ([]map[string]any, bool) {
	raw, ok := r.ListField(name)
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, true
}

// RefsField returns the named field decoded as a list of cross-references.
// Both plain id strings and {id: ...} objects are accepted; a single scalar
// value is treated as a one-element list. Entries that carry no id at all
// are skipped.
func (r Record) RefsField(name string) ([]Ref, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}
	refs := make([]Ref, 0, len(items))
	for _, item := range items {
		if ref, ok := refFromValue(item); ok {
			refs = append(refs, ref)
		}
	}
	return refs, true
}

// Ref is a cross-reference to another record. Source files may write it as a
// bare id string or as an object with an "id" key; both decode to the same
// value.
type Ref struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

func refFromValue(v any) (Ref, bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return Ref{}, false
		}
		return Ref{ID: t}, true
	case map[string]any:
		id, _ := t["id"].(string)
		if id == "" {
			return Ref{}, false
		}
		label, _ := t["label"].(string)
		return Ref{ID: id, Label: label}, true
	default:
		return Ref{}, false
	}
}

// UnmarshalYAML accepts both the scalar and the mapping form of a reference.
func (ref *Ref) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		ref.ID = value.Value
		return nil
	case yaml.MappingNode:
		type plain Ref
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*ref = Ref(p)
		return nil
	default:
		return fmt.Errorf("reference must be a string or an object, got yaml kind %d", value.Kind)
	}
}

// UnmarshalJSON accepts both `"uc-1"` and `{"id": "uc-1"}`.
func (ref *Ref) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := jsonUnmarshal(data, &id); err != nil {
			return err
		}
		ref.ID = id
		return nil
	}
	type plain Ref
	var p plain
	if err := jsonUnmarshal(data, &p); err != nil {
		return err
	}
	*ref = Ref(p)
	return nil
}
