package sharecode

import (
	"bytes"
	"regexp"
	"testing"
)

func TestGenerate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^IH-[A-Z0-9]{5}$`)

	for i := 0; i < 1000; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("Generate() = %q, want match for %s", code, pattern)
		}
	}
}

func TestGenerate_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		seen[code] = true
	}
	// 100次生成全部相同几乎不可能
	if len(seen) < 2 {
		t.Errorf("expected varied codes, got %d unique", len(seen))
	}
}

func TestGenerateFrom_RejectsBiasedBytes(t *testing.T) {
	// 252..255 应被丢弃重采样，否则取模会让A-D偏多
	r := bytes.NewReader([]byte{255, 254, 253, 252, 0, 1, 2, 3, 4})

	code, err := generateFrom(r)
	if err != nil {
		t.Fatalf("generateFrom() error: %v", err)
	}
	if code != "IH-ABCDE" {
		t.Errorf("generateFrom() = %q, want %q", code, "IH-ABCDE")
	}
}

func TestGenerateFrom_BoundaryByte(t *testing.T) {
	// 251是最大的可接受字节，251%36=35对应'9'
	r := bytes.NewReader([]byte{251, 251, 251, 251, 251})

	code, err := generateFrom(r)
	if err != nil {
		t.Fatalf("generateFrom() error: %v", err)
	}
	if code != "IH-99999" {
		t.Errorf("generateFrom() = %q, want %q", code, "IH-99999")
	}
}
