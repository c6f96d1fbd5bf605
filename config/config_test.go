package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/danmuck/mapbin/internal/testutil/testlog"
	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTOMLOverlaysDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "mapbin.toml", `
[codec]
check_header = false
max_string_bytes = 4096
max_depth = 32

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Codec.CheckHeader = false
	want.Codec.MaxStringBytes = 4096
	want.Codec.MaxDepth = 32
	want.Log.Level = "debug"
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "mapbin.yaml", "codec:\n  write_header: false\nlog:\n  no_color: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Codec.WriteHeader = false
	want.Log.NoColor = true
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		body string
		want string
	}{
		{"unknown.toml", "[codec]\nverbose = true\n", "unknown key"},
		{"level.toml", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"zero.yml", "codec:\n  max_string_bytes: 0\n", "max_string_bytes"},
		{"depth.toml", "[codec]\nmax_depth = -1\n", "max_depth"},
		{"mapbin.json", "{}", "unsupported"},
		{"broken.yaml", "codec: [", "parse"},
	}
	for _, tc := range cases {
		_, err := Load(writeFile(t, tc.name, tc.body))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestOptionsAndLogging(t *testing.T) {
	testlog.Start(t)
	cfg := Default()
	cfg.Codec.CheckHeader = false
	cfg.Log.Level = "warn"

	opts := cfg.Options()
	if opts.CheckHeader || !opts.WriteHeader || opts.MaxStringBytes != cfg.Codec.MaxStringBytes || opts.MaxDepth != cfg.Codec.MaxDepth {
		t.Fatalf("unexpected options %+v", opts)
	}
	settings := cfg.Logging()
	if settings.Level != zerolog.WarnLevel || !settings.Timestamp {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestTemplateLoadsAsDefault(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	for _, name := range []string{"mapbin.toml", "mapbin.yaml"} {
		path := filepath.Join(dir, name)
		if err := WriteTemplate(path, false); err != nil {
			t.Fatalf("write template %s: %v", name, err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load template %s: %v", name, err)
		}
		if !reflect.DeepEqual(cfg, Default()) {
			t.Fatalf("%s: expected defaults, got %+v", name, cfg)
		}
		if err := WriteTemplate(path, false); err == nil {
			t.Fatalf("%s: expected refusal to overwrite", name)
		}
		if err := WriteTemplate(path, true); err != nil {
			t.Fatalf("%s: overwrite: %v", name, err)
		}
	}
}
