package config

import (
	"reflect"
	"testing"
)

func TestMergeMaps(t *testing.T) {
	base := map[string]interface{}{
		"storage": map[string]interface{}{"backend": "sqlite", "path": "/a"},
		"version": "1.0",
		"list":    []interface{}{"a"},
	}
	override := map[string]interface{}{
		"storage": map[string]interface{}{"path": "/b"},
		"list":    []interface{}{"b", "c"},
		"ui":      map[string]interface{}{"theme": "terminal"},
	}

	got := mergeMaps(base, override)
	want := map[string]interface{}{
		"storage": map[string]interface{}{"backend": "sqlite", "path": "/b"},
		"version": "1.0",
		"list":    []interface{}{"b", "c"},
		"ui":      map[string]interface{}{"theme": "terminal"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeMaps() = %v, want %v", got, want)
	}

	if base["storage"].(map[string]interface{})["path"] != "/a" {
		t.Error("mergeMaps modified its base")
	}
}

func TestMergeMapsScalarReplacesMap(t *testing.T) {
	got := mergeMaps(
		map[string]interface{}{"preview": map[string]interface{}{"output": "x"}},
		map[string]interface{}{"preview": "none"},
	)
	if got["preview"] != "none" {
		t.Errorf("Expected scalar to replace map, got %v", got["preview"])
	}
}
