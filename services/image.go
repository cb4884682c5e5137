package services

import (
	"encoding/base64"
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

// ResolveMediaType returns the declared media type, or the one sniffed from
// data when the client did not send a usable one.
func ResolveMediaType(declared string, data []byte) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != octetStream {
			return declared
		}
	}
	return mimetype.Detect(data).String()
}

// EncodeDataURI embeds data as data:<mediaType>;base64,<payload>
func EncodeDataURI(data []byte, mediaType string) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
