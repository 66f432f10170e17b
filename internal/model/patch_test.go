// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

func TestFieldUnmarshalStates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSet  bool
		wantNull bool
		wantVal  string
	}{
		{"absent", `{}`, false, false, ""},
		{"explicit null", `{"title": null}`, true, true, ""},
		{"present", `{"title": "Hello"}`, true, false, "Hello"},
		{"empty string", `{"title": ""}`, true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch AboutPatch
			if err := json.Unmarshal([]byte(tt.input), &patch); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if patch.Title.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", patch.Title.Set, tt.wantSet)
			}
			if patch.Title.Null != tt.wantNull {
				t.Errorf("Null = %v, want %v", patch.Title.Null, tt.wantNull)
			}
			if patch.Title.Value != tt.wantVal {
				t.Errorf("Value = %q, want %q", patch.Title.Value, tt.wantVal)
			}
		})
	}
}

func TestFieldUnmarshalInt(t *testing.T) {
	var patch ProjectPatch
	if err := json.Unmarshal([]byte(`{"type_id": 3}`), &patch); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !patch.TypeID.Set || patch.TypeID.Null {
		t.Errorf("TypeID state = (%v, %v), want (true, false)", patch.TypeID.Set, patch.TypeID.Null)
	}
	if patch.TypeID.Value != 3 {
		t.Errorf("TypeID = %d, want 3", patch.TypeID.Value)
	}
}

func TestFieldPtr(t *testing.T) {
	var f Field[string]
	if err := json.Unmarshal([]byte(`"x"`), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p := f.Ptr(); p == nil || *p != "x" {
		t.Errorf("Ptr() = %v, want pointer to %q", p, "x")
	}

	var null Field[string]
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if null.Ptr() != nil {
		t.Error("Ptr() on null field should be nil")
	}
}

func TestIsValidProjectStatus(t *testing.T) {
	for _, s := range ValidProjectStatuses {
		if !IsValidProjectStatus(s) {
			t.Errorf("IsValidProjectStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "Completed", "in_progress"} {
		if IsValidProjectStatus(s) {
			t.Errorf("IsValidProjectStatus(%q) = true, want false", s)
		}
	}
}

func TestIsPublicSettingKey(t *testing.T) {
	if !IsPublicSettingKey(SettingKeySiteName) {
		t.Error("site_name should be public")
	}
	if IsPublicSettingKey(SettingKeySetupCompleted) {
		t.Error("setup_completed must not be public")
	}
	if IsPublicSettingKey("unknown_key") {
		t.Error("unknown keys must not be public")
	}
}
