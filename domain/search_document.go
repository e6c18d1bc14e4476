package domain

import "encoding/json"

// SearchDocument is the engine-side projection of a content entity. It is
// keyed by the content id in string form and flattened to a single JSON
// object when sent to the engine: id, url, then the builder-populated
// fields.
type SearchDocument struct {
	ID     string
	URL    string
	Fields map[string]any
}

func NewSearchDocument(content *Content, url string) SearchDocument {
	return SearchDocument{
		ID:     content.DocumentID(),
		URL:    url,
		Fields: map[string]any{},
	}
}

// SetField stores a builder-populated field. The "id" and "url" keys are
// reserved and silently ignored.
func (d *SearchDocument) SetField(name string, value any) {
	if name == "id" || name == "url" {
		return
	}
	if d.Fields == nil {
		d.Fields = map[string]any{}
	}
	d.Fields[name] = value
}

func (d SearchDocument) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Fields)+2)
	for k, v := range d.Fields {
		flat[k] = v
	}
	flat["id"] = d.ID
	flat["url"] = d.URL
	return json.Marshal(flat)
}

func (d *SearchDocument) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if id, ok := flat["id"].(string); ok {
		d.ID = id
	}
	if url, ok := flat["url"].(string); ok {
		d.URL = url
	}
	delete(flat, "id")
	delete(flat, "url")
	d.Fields = flat
	return nil
}
