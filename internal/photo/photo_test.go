package photo

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestEncodeAcceptsImageUnderCap verifies a 100,000-byte JPEG is accepted
// and produces a self-describing data URI.
func TestEncodeAcceptsImageUnderCap(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 100_000)
	out, err := Encode("image/jpeg", data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(out, "data:image/jpeg;base64,") {
		t.Errorf("unexpected prefix: %q", out[:40])
	}
	// The encoded form is larger than the raw input; that is tolerated.
	if len(out) <= len(data) {
		t.Errorf("expected base64 overhead, got %d <= %d", len(out), len(data))
	}
}

// TestEncodeRejectsOversize verifies a 200,000-byte image is refused.
func TestEncodeRejectsOversize(t *testing.T) {
	data := make([]byte, 200_000)
	if _, err := Encode("image/png", data); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

// TestEncodeBoundary pins the cap at exactly 153,600 bytes.
func TestEncodeBoundary(t *testing.T) {
	if _, err := Encode("image/png", make([]byte, MaxBytes)); err != nil {
		t.Errorf("exactly 150KB must be accepted, got %v", err)
	}
	if _, err := Encode("image/png", make([]byte, MaxBytes+1)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("150KB+1 must be rejected, got %v", err)
	}
}

// TestEncodeRejectsNonImage verifies non-image declared types are refused
// regardless of size, and that the type check runs before the size check.
func TestEncodeRejectsNonImage(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		size int
	}{
		{"pdf small", "application/pdf", 10},
		{"text empty", "text/plain", 0},
		{"pdf oversize still reports type", "application/pdf", 300_000},
		{"no type", "", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.typ, make([]byte, tt.size)); !errors.Is(err, ErrNotImage) {
				t.Errorf("expected ErrNotImage, got %v", err)
			}
		})
	}
}

// TestEncodeReader verifies the streaming path detects oversized input
// without needing the full file in memory first.
func TestEncodeReader(t *testing.T) {
	big := bytes.NewReader(make([]byte, 200_000))
	if _, err := EncodeReader("image/gif", big); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	small := bytes.NewReader(bytes.Repeat([]byte{1}, 1024))
	out, err := EncodeReader("image/gif", small)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(out, "data:image/gif;base64,") {
		t.Errorf("unexpected prefix: %q", out[:30])
	}
}
