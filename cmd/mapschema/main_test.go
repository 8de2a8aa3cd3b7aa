package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "map.schema.json")
	if err := writeSchema(out, buildSchema()); err != nil {
		t.Fatalf("writeSchema: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{`"cells"`, `"size"`, `"label"`, "cave_enterance", "Snowy World Map"} {
		if !strings.Contains(text, want) {
			t.Errorf("schema does not mention %s", want)
		}
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}
