package domain

import "testing"

func TestNewSearchSettings_Defaults(t *testing.T) {
	s, err := NewSearchSettings(nil)
	if err != nil {
		t.Fatalf("NewSearchSettings: %v", err)
	}

	if s.BatchSize() != 500 {
		t.Errorf("BatchSize() = %d, want 500", s.BatchSize())
	}
	if s.ExclusionProperty() != "excludeFromSearch" {
		t.Errorf("ExclusionProperty() = %q, want %q", s.ExclusionProperty(), "excludeFromSearch")
	}
	if s.IndexName() != "contents" {
		t.Errorf("IndexName() = %q, want %q", s.IndexName(), "contents")
	}
}

func TestNewSearchSettings_Overrides(t *testing.T) {
	s, err := NewSearchSettings(map[string]string{
		SettingBatchSize:         "100",
		SettingExclusionProperty: "hideFromSearch",
		SettingIndexName:         "pages",
		"UnknownKey":             "ignored",
	})
	if err != nil {
		t.Fatalf("NewSearchSettings: %v", err)
	}

	if s.BatchSize() != 100 {
		t.Errorf("BatchSize() = %d, want 100", s.BatchSize())
	}
	if s.ExclusionProperty() != "hideFromSearch" {
		t.Errorf("ExclusionProperty() = %q, want %q", s.ExclusionProperty(), "hideFromSearch")
	}
	if s.IndexName() != "pages" {
		t.Errorf("IndexName() = %q, want %q", s.IndexName(), "pages")
	}
}

func TestNewSearchSettings_InvalidBatchSize(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "lots"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSearchSettings(map[string]string{SettingBatchSize: tt.value})
			if err == nil {
				t.Errorf("expected error for batch size %q", tt.value)
			}
		})
	}
}

func TestNewSearchSettings_EmptyValuesKeepDefaults(t *testing.T) {
	s, err := NewSearchSettings(map[string]string{
		SettingExclusionProperty: "",
		SettingIndexName:         "",
	})
	if err != nil {
		t.Fatalf("NewSearchSettings: %v", err)
	}

	if s.ExclusionProperty() != "excludeFromSearch" {
		t.Errorf("ExclusionProperty() = %q, want default", s.ExclusionProperty())
	}
	if s.IndexName() != "contents" {
		t.Errorf("IndexName() = %q, want default", s.IndexName())
	}
}
