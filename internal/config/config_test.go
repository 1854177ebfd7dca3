package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arran4/pogreport"
	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(pogreport.DefaultMetrics, cfg.Metrics()); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pogreport.yaml")
	data := `
page:
  width: 216
  height: 279
margins:
  left: 20
  right: 20
footer: Internal
server:
  addr: ":9000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("POGREPORT_FOOTER", "Restricted")
	t.Setenv("POGREPORT_API_KEY", "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := pogreport.Metrics{PageW: 216, PageH: 279, Top: 25, Bottom: 30, Left: 20, Right: 20}
	if diff := cmp.Diff(want, cfg.Metrics()); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
	if cfg.Footer != "Restricted" {
		t.Fatalf("env should override file footer, got %q", cfg.Footer)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.APIKey != "secret" {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Header != "Security Assessment Report" {
		t.Fatalf("header default lost: %q", cfg.Header)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Margins.Top = 280
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected margin error")
	}

	cfg = Default()
	cfg.Fonts.MonoPath = filepath.Join(t.TempDir(), "missing.ttf")
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing font error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("page: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEnvHeaderAndBodyLimit(t *testing.T) {
	t.Setenv("POGREPORT_HEADER", "Pentest 2026")
	t.Setenv("POGREPORT_MAX_BODY_BYTES", "2048")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Header != "Pentest 2026" || cfg.Server.MaxBodyBytes != 2048 {
		t.Fatalf("header %q, max body %d", cfg.Header, cfg.Server.MaxBodyBytes)
	}

	t.Setenv("POGREPORT_MAX_BODY_BYTES", "lots")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.MaxBodyBytes != 10<<20 {
		t.Fatalf("unparsable limit gave %d, want default", cfg.Server.MaxBodyBytes)
	}
}
