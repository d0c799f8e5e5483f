package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	applied, err := Load("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	content := "BOOKMARKGEN_TEST_A=data/bookmarks.yaml\nBOOKMARKGEN_TEST_B=content/tags\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BOOKMARKGEN_TEST_A", "")
	t.Setenv("BOOKMARKGEN_TEST_B", "")
	_ = os.Unsetenv("BOOKMARKGEN_TEST_A") //nolint:errcheck
	_ = os.Unsetenv("BOOKMARKGEN_TEST_B") //nolint:errcheck

	applied, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(applied) != 2 {
		t.Errorf("applied = %v, want 2 keys", applied)
	}
	if got := os.Getenv("BOOKMARKGEN_TEST_A"); got != "data/bookmarks.yaml" {
		t.Errorf("BOOKMARKGEN_TEST_A = %q", got)
	}
	if got := os.Getenv("BOOKMARKGEN_TEST_B"); got != "content/tags" {
		t.Errorf("BOOKMARKGEN_TEST_B = %q", got)
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("BOOKMARKGEN_TEST_C=from_file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BOOKMARKGEN_TEST_C", "from_env")

	applied, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
	if got := os.Getenv("BOOKMARKGEN_TEST_C"); got != "from_env" {
		t.Errorf("BOOKMARKGEN_TEST_C = %q, want %q (env should take precedence)", got, "from_env")
	}
}

func TestParse(t *testing.T) {
	input := "# comment\n\nA=1\n  # indented comment\nexport B='two'\nA=ignored\nbroken line\n"

	vars, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []Var{{Key: "A", Value: "1"}, {Key: "B", Value: "two"}}
	if len(vars) != len(want) {
		t.Fatalf("Parse() = %v, want %v", vars, want)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Errorf("vars[%d] = %v, want %v", i, vars[i], want[i])
		}
	}
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		line    string
		wantKey string
		wantVal string
		wantOK  bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"KEY=\"quoted value\"", "KEY", "quoted value", true},
		{"KEY='single quoted'", "KEY", "single quoted", true},
		{"export KEY=value", "KEY", "value", true},
		{"  KEY = value  ", "KEY", "value", true},
		{"KEY=a=b", "KEY", "a=b", true},
		{"no-equals-sign", "", "", false},
		{"=no-key", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		key, val, ok := parseEnvLine(tt.line)
		if ok != tt.wantOK || key != tt.wantKey || val != tt.wantVal {
			t.Errorf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, val, ok, tt.wantKey, tt.wantVal, tt.wantOK)
		}
	}
}
