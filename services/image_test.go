package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestResolveMediaType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		data     []byte
		want     string
	}{
		{"Declared type is kept", "image/jpeg", pngHeader, "image/jpeg"},
		{"Missing type is sniffed", "", pngHeader, "image/png"},
		{"Octet stream is sniffed", "application/octet-stream", pngHeader, "image/png"},
		{"Malformed type is sniffed", "not a mime", pngHeader, "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveMediaType(tt.declared, tt.data))
		})
	}
}

func TestEncodeDataURI(t *testing.T) {
	require.Equal(t, "data:image/png;base64,aGVsbG8=", EncodeDataURI([]byte("hello"), "image/png"))
}
