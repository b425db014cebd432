package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewPaths(t *testing.T) {
	paths, err := NewPaths()
	if err != nil {
		t.Fatalf("NewPaths error: %v", err)
	}

	if paths.HomeDir == "" {
		t.Error("HomeDir should not be empty")
	}
}

func TestPaths_BaseDir(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	baseDir := paths.BaseDir()
	expected := filepath.Join(tmpDir, DefaultBaseDir)

	if baseDir != expected {
		t.Errorf("BaseDir() = %q, want %q", baseDir, expected)
	}
}

func TestPaths_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	configFile := paths.ConfigFile()
	expected := filepath.Join(tmpDir, DefaultBaseDir, DefaultConfigFile)

	if configFile != expected {
		t.Errorf("ConfigFile() = %q, want %q", configFile, expected)
	}
}

func TestPaths_DataDir(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	dataDir := paths.DataDir()

	if !strings.HasSuffix(dataDir, "designs") {
		t.Errorf("DataDir() = %q, should end with 'designs'", dataDir)
	}
}

func TestPaths_DataPath(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	dataPath := paths.DataPath("design.json")
	expected := filepath.Join(paths.DataDir(), "design.json")

	if dataPath != expected {
		t.Errorf("DataPath() = %q, want %q", dataPath, expected)
	}
}

func TestPaths_EnsureBaseDir(t *testing.T) {
	// Use temp directory to avoid polluting user's home
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	err := paths.EnsureBaseDir()
	if err != nil {
		t.Fatalf("EnsureBaseDir error: %v", err)
	}

	// Verify directory exists
	info, err := os.Stat(paths.BaseDir())
	if err != nil {
		t.Fatalf("BaseDir not created: %v", err)
	}

	if !info.IsDir() {
		t.Error("BaseDir should be a directory")
	}
}

func TestPaths_EnsureDataDir(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{HomeDir: tmpDir}

	err := paths.EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir error: %v", err)
	}

	info, err := os.Stat(paths.DataDir())
	if err != nil {
		t.Fatalf("DataDir not created: %v", err)
	}

	if !info.IsDir() {
		t.Error("DataDir should be a directory")
	}
}
