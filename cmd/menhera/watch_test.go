package main

import (
	"path/filepath"
	"testing"

	"menhera/internal/locale"
)

func TestLetterFile(t *testing.T) {
	bundle := locale.Get("en")

	if !letterFile(bundle, filepath.Join("ws", bundle.Letter1.Filename)) {
		t.Error("first letter not recognized")
	}
	if !letterFile(bundle, filepath.Join("ws", "sub", bundle.Letter2.Filename)) {
		t.Error("second letter not recognized")
	}
	if letterFile(bundle, filepath.Join("ws", "main.go")) {
		t.Error("source file misclassified as a letter")
	}
	if letterFile(bundle, filepath.Join("ws", bundle.Letter1.Filename, "inner.go")) {
		t.Error("file inside a same-named directory misclassified")
	}
}
