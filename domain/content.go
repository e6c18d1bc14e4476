package domain

import (
	"errors"
	"strconv"
	"time"
)

// Content is a CMS content entity as seen by the indexer. Field access goes
// through the property bag; the CMS owns the actual content model.
type Content struct {
	id          int64
	name        string
	contentType string
	properties  map[string]any
	published   bool
	updatedAt   time.Time
}

func NewContent(id int64, name, contentType string, properties map[string]any, published bool, updatedAt time.Time) (*Content, error) {
	if id <= 0 {
		return nil, errors.New("content ID must be positive")
	}
	if name == "" {
		return nil, errors.New("content name cannot be empty")
	}
	if properties == nil {
		properties = map[string]any{}
	}

	return &Content{
		id:          id,
		name:        name,
		contentType: contentType,
		properties:  properties,
		published:   published,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Content) ID() int64 {
	return c.id
}

// DocumentID is the search document key: the content id in invariant
// base-10 string form.
func (c *Content) DocumentID() string {
	return strconv.FormatInt(c.id, 10)
}

func (c *Content) Name() string {
	return c.name
}

func (c *Content) ContentType() string {
	return c.contentType
}

func (c *Content) Published() bool {
	return c.published
}

func (c *Content) UpdatedAt() time.Time {
	return c.updatedAt
}

// Property reports the raw property value and whether the property exists.
func (c *Content) Property(name string) (any, bool) {
	v, ok := c.properties[name]
	return v, ok
}

// BoolProperty returns the property as a bool. A missing property is
// distinct from a property that is false.
func (c *Content) BoolProperty(name string) (value bool, exists bool) {
	v, ok := c.properties[name]
	if !ok {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, true
		}
		return parsed, true
	case int:
		return b != 0, true
	case int64:
		return b != 0, true
	case float64:
		return b != 0, true
	default:
		return false, true
	}
}

// StringProperty returns the property as a string, or "" if absent or not
// a string.
func (c *Content) StringProperty(name string) string {
	v, ok := c.properties[name]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
