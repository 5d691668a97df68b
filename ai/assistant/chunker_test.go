package assistant

import (
	"strings"
	"testing"
)

func TestSplitChunks_SmallInputUntouched(t *testing.T) {
	chunks := splitChunks("short input", 100)
	if len(chunks) != 1 || chunks[0] != "short input" {
		t.Errorf("splitChunks() = %v", chunks)
	}
}

func TestSplitChunks_PrefersLineBoundaries(t *testing.T) {
	code := "line one\nline two\nline three\n"
	chunks := splitChunks(code, 10)

	if len(chunks) < 3 {
		t.Fatalf("expected one chunk per line, got %v", chunks)
	}
	for _, c := range chunks {
		if len(c) > 10 {
			t.Errorf("chunk exceeds size: %q", c)
		}
	}
	if strings.Join(chunks, "") != code {
		t.Errorf("chunks lose content: %v", chunks)
	}
}

func TestSplitChunks_LongLineSplitHard(t *testing.T) {
	code := strings.Repeat("x", 35)
	chunks := splitChunks(code, 10)

	if strings.Join(chunks, "") != code {
		t.Errorf("chunks lose content: %v", chunks)
	}
	for _, c := range chunks {
		if len(c) > 10 {
			t.Errorf("chunk exceeds size: %q", c)
		}
	}
}

func TestSplitChunks_EmptyInput(t *testing.T) {
	chunks := splitChunks("", 10)
	if len(chunks) != 1 {
		t.Errorf("splitChunks() = %v", chunks)
	}
}
