package models

// UploadedImage is the file received on /generate. It lives for one request only.
type UploadedImage struct {
	Filename  string
	MediaType string // as declared by the client, may be empty
	Data      []byte
}
