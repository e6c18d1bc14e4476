package domain

import (
	"fmt"
	"strconv"
)

// Setting keys understood by NewSearchSettings.
const (
	SettingBatchSize         = "BatchSize"
	SettingExclusionProperty = "ExcludeFromIndexPropertyName"
	SettingIndexName         = "IndexName"
)

const (
	defaultBatchSize         = 500
	defaultExclusionProperty = "excludeFromSearch"
	defaultIndexName         = "contents"
)

// SearchSettings is the CMS-side search configuration entity: named
// key/value overrides on top of defaults. Read-only at request time.
type SearchSettings struct {
	batchSize         int
	exclusionProperty string
	indexName         string
}

// NewSearchSettings applies the known overrides on top of defaults.
// Unknown keys are ignored; invalid values for known keys are an error.
func NewSearchSettings(overrides map[string]string) (*SearchSettings, error) {
	s := &SearchSettings{
		batchSize:         defaultBatchSize,
		exclusionProperty: defaultExclusionProperty,
		indexName:         defaultIndexName,
	}

	for key, value := range overrides {
		switch key {
		case SettingBatchSize:
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid %s setting: %q", SettingBatchSize, value)
			}
			s.batchSize = n
		case SettingExclusionProperty:
			if value != "" {
				s.exclusionProperty = value
			}
		case SettingIndexName:
			if value != "" {
				s.indexName = value
			}
		}
	}

	return s, nil
}

// DefaultSearchSettings returns settings with no overrides applied.
func DefaultSearchSettings() *SearchSettings {
	s, _ := NewSearchSettings(nil)
	return s
}

func (s *SearchSettings) BatchSize() int {
	return s.batchSize
}

func (s *SearchSettings) ExclusionProperty() string {
	return s.exclusionProperty
}

func (s *SearchSettings) IndexName() string {
	return s.indexName
}
