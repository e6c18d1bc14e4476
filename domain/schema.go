package domain

import (
	"reflect"
	"sort"
	"strings"
)

// IndexSchema is the mapping registered for the document type: which fields
// are searchable, filterable and sortable.
type IndexSchema struct {
	Searchable []string
	Filterable []string
	Sortable   []string
}

// IsEmpty reports whether no attribute of the schema is set.
func (s IndexSchema) IsEmpty() bool {
	return len(s.Searchable) == 0 && len(s.Filterable) == 0 && len(s.Sortable) == 0
}

// Contains reports whether other is fully covered by s. Used for the
// idempotency check before mapping registration.
func (s IndexSchema) Contains(other IndexSchema) bool {
	return containsAll(s.Searchable, other.Searchable) &&
		containsAll(s.Filterable, other.Filterable) &&
		containsAll(s.Sortable, other.Sortable)
}

func containsAll(haystack, needles []string) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, h := range haystack {
		set[h] = struct{}{}
	}
	for _, n := range needles {
		if _, ok := set[n]; !ok {
			return false
		}
	}
	return true
}

// SchemaFromStruct derives an IndexSchema from the `search` tags of a
// document fields struct. A tag holds the field name followed by
// comma-separated attributes, e.g. `search:"title,searchable,sortable"`.
// Fields tagged "-" or untagged are skipped.
func SchemaFromStruct(v any) IndexSchema {
	var schema IndexSchema

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return schema
	}

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("search")
		if tag == "" || tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			continue
		}

		for _, attr := range parts[1:] {
			switch attr {
			case "searchable":
				schema.Searchable = append(schema.Searchable, name)
			case "filterable":
				schema.Filterable = append(schema.Filterable, name)
			case "sortable":
				schema.Sortable = append(schema.Sortable, name)
			}
		}
	}

	sort.Strings(schema.Searchable)
	sort.Strings(schema.Filterable)
	sort.Strings(schema.Sortable)
	return schema
}
