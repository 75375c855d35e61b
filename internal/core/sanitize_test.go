package core

import (
	"bytes"
	"testing"
)

func TestSanitizeUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"ascii unchanged", []byte("CUST0001,Ada"), []byte("CUST0001,Ada")},
		{"empty", []byte{}, []byte{}},
		{"multibyte kept", []byte("S\xc3\xa3o Paulo"), []byte("S\xc3\xa3o Paulo")},
		{"stray byte", []byte{0x80}, []byte("\uFFFD")},
		{"truncated sequence", []byte{0xc3}, []byte("\uFFFD")},
		{"latin-1 accent", []byte("Caf\xe9,Paris"), []byte("Caf\uFFFD,Paris")},
		{"windows-1252 quotes", []byte("\x93Desk\x94"), []byte("\uFFFDDesk\uFFFD")},
		{"overlong encoding", []byte{0xc0, 0x80}, []byte("\uFFFD\uFFFD")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeUTF8(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("sanitizeUTF8(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
