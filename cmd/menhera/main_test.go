package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRuntime_DefaultsWhenNoFile(t *testing.T) {
	workspace = t.TempDir()
	configPath = ""
	apiKey = ""

	cfg, bundle, err := loadRuntime()
	if err != nil {
		t.Fatalf("loadRuntime: %v", err)
	}
	if cfg.Escalation.AngerThreshold != 5 {
		t.Errorf("anger threshold = %d, want default 5", cfg.Escalation.AngerThreshold)
	}
	if bundle == nil || bundle.Letter1.Filename == "" {
		t.Error("locale bundle not resolved")
	}
}

func TestLoadRuntime_APIKeyFlagWins(t *testing.T) {
	workspace = t.TempDir()
	configPath = ""
	apiKey = "flag-key"
	defer func() { apiKey = "" }()

	cfg, _, err := loadRuntime()
	if err != nil {
		t.Fatalf("loadRuntime: %v", err)
	}
	if cfg.LLM.APIKey != "flag-key" {
		t.Errorf("api key = %q, want flag override", cfg.LLM.APIKey)
	}
}

func TestLoadRuntime_ReadsWorkspaceConfig(t *testing.T) {
	workspace = t.TempDir()
	configPath = ""
	apiKey = ""

	yaml := "escalation:\n  anger_threshold: 9\n  recovery_threshold: 4\n"
	if err := os.WriteFile(filepath.Join(workspace, ".menhera.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := loadRuntime()
	if err != nil {
		t.Fatalf("loadRuntime: %v", err)
	}
	if cfg.Escalation.AngerThreshold != 9 {
		t.Errorf("anger threshold = %d, want 9 from file", cfg.Escalation.AngerThreshold)
	}
}

func TestUnderGitDir(t *testing.T) {
	if !underGitDir(filepath.Join("ws", ".git", "HEAD")) {
		t.Error(".git/HEAD not recognized")
	}
	if underGitDir(filepath.Join("ws", "src", "main.go")) {
		t.Error("source file misclassified as git internals")
	}
	if underGitDir(filepath.Join("ws", ".gitignore")) {
		t.Error(".gitignore misclassified as git internals")
	}
}
