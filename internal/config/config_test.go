package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/weft-dev/weft/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewHasDefaults(t *testing.T) {
	c := New()
	if c.Server.Port != DefaultPort {
		t.Errorf("Port = %d", c.Server.Port)
	}
	if c.Server.Host != DefaultHost {
		t.Errorf("Host = %q", c.Server.Host)
	}
	if c.Publish.Output != DefaultOutput {
		t.Errorf("Output = %q", c.Publish.Output)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"name": "demo",
		"server": {"port": 3000, "liveReload": true},
		"publish": {"s3Bucket": "site-bucket", "s3Prefix": "v1"},
		"styleSheets": ["/app.css"]
	}`)

	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "demo" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.Server.Port != 3000 || !c.Server.LiveReload {
		t.Errorf("Server = %+v", c.Server)
	}
	if c.Server.Host != DefaultHost {
		t.Errorf("Host default not applied: %q", c.Server.Host)
	}
	if c.Publish.S3Bucket != "site-bucket" || c.Publish.Output != DefaultOutput {
		t.Errorf("Publish = %+v", c.Publish)
	}
	if len(c.StyleSheets) != 1 || c.StyleSheets[0] != "/app.css" {
		t.Errorf("StyleSheets = %v", c.StyleSheets)
	}
	if c.Dir() != dir {
		t.Errorf("Dir = %q, want %q", c.Dir(), dir)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	we, ok := err.(*errors.WeftError)
	if !ok || we.Code != "E100" {
		t.Errorf("err = %v, want E100", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)

	_, err := Load(dir)
	we, ok := err.(*errors.WeftError)
	if !ok || we.Code != "E101" {
		t.Errorf("err = %v, want E101", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := New()
	c.Name = "site"
	c.Server.Port = 4000

	if err := c.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "site" || loaded.Server.Port != 4000 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("expected error for unsaved config")
	}
}

func TestValidate(t *testing.T) {
	c := New()
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	c.Server.Port = 99999
	err := c.Validate()
	we, ok := err.(*errors.WeftError)
	if !ok || we.Code != "E102" {
		t.Errorf("err = %v, want E102", err)
	}
}

func TestServerAddress(t *testing.T) {
	c := New()
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 9090
	if got := c.ServerAddress(); got != "0.0.0.0:9090" {
		t.Errorf("ServerAddress = %q", got)
	}
	if got := c.ServerURL(); got != "http://0.0.0.0:9090" {
		t.Errorf("ServerURL = %q", got)
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"publish": {"output": "public"}}`)

	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.OutputPath(); got != filepath.Join(dir, "public") {
		t.Errorf("OutputPath = %q", got)
	}

	c.Publish.Output = "/var/www"
	if got := c.OutputPath(); got != "/var/www" {
		t.Errorf("absolute OutputPath = %q", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestFindProjectRootMissing(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	we, ok := err.(*errors.WeftError)
	if !ok || we.Code != "E100" {
		t.Errorf("err = %v, want E100", err)
	}
}
