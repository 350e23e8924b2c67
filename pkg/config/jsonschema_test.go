// SPDX-License-Identifier: Apache-2.0
package config

import (
	"encoding/json"
	"testing"
)

func decodeSchema(t *testing.T, scope *ConfigScope) map[string]interface{} {
	t.Helper()

	schema, err := GenerateJSONSchemaForScope(scope)
	if err != nil {
		t.Fatalf("GenerateJSONSchemaForScope failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(schema, &result); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}
	return result
}

func TestGenerateJSONSchema(t *testing.T) {
	schema, err := GenerateJSONSchema()
	if err != nil {
		t.Fatalf("GenerateJSONSchema failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(schema, &result); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}

	if result["$schema"] != "https://json-schema.org/draft/2020-12/schema" {
		t.Errorf("$schema = %v, want Draft 2020-12", result["$schema"])
	}
	if result["title"] != "GPG Assist Configuration" {
		t.Errorf("title = %v", result["title"])
	}
	if result["additionalProperties"] != false {
		t.Error("additionalProperties should be false")
	}

	properties, ok := result["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties field missing or not an object")
	}
	for _, key := range []string{"use-tui", "log-level", "synth"} {
		if _, exists := properties[key]; !exists {
			t.Errorf("Expected property '%s' not found in schema", key)
		}
	}
}

func TestGenerateJSONSchema_NestedSynth(t *testing.T) {
	result := decodeSchema(t, nil)
	properties := result["properties"].(map[string]interface{})

	synth, ok := properties["synth"].(map[string]interface{})
	if !ok {
		t.Fatal("synth should be an object")
	}
	if synth["type"] != "object" {
		t.Errorf("synth type = %v, want object", synth["type"])
	}

	synthProps, ok := synth["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("synth should have properties")
	}

	quote, ok := synthProps["quote"].(map[string]interface{})
	if !ok {
		t.Fatal("synth.quote missing")
	}
	enum, ok := quote["enum"].([]interface{})
	if !ok || len(enum) != 2 {
		t.Errorf("synth.quote enum = %v, want [none shell]", quote["enum"])
	}

	version, ok := synthProps["gnupg-version"].(map[string]interface{})
	if !ok {
		t.Fatal("synth.gnupg-version missing")
	}
	if version["pattern"] == nil {
		t.Error("synth.gnupg-version should carry a pattern")
	}
}

func TestGenerateJSONSchemaForScope_LocalOmitsForbidden(t *testing.T) {
	local := ScopeLocal
	result := decodeSchema(t, &local)

	if result["title"] != "GPG Assist Local Configuration" {
		t.Errorf("title = %v", result["title"])
	}
	properties := result["properties"].(map[string]interface{})
	if _, exists := properties["use-tui"]; exists {
		t.Error("use-tui is forbidden in local scope and should be omitted")
	}
	if _, exists := properties["synth"]; !exists {
		t.Error("synth should be present in local scope")
	}
}

func TestGenerateJSONSchemaForScope_User(t *testing.T) {
	user := ScopeUser
	result := decodeSchema(t, &user)

	if result["title"] != "GPG Assist User Configuration" {
		t.Errorf("title = %v", result["title"])
	}
	properties := result["properties"].(map[string]interface{})
	if _, exists := properties["use-tui"]; !exists {
		t.Error("use-tui should be present in user scope")
	}
}
