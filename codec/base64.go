package codec

import "encoding/base64"

// ByteCodec performs bidirectional transformation between a textual wire
// representation and a raw byte buffer.
type ByteCodec interface {
	Decode(s string) ([]byte, error)
	Encode(b []byte) string
}

// Base64 is the standard (RFC 4648, padded) base64 codec used for bytes
// fields on the wire.
var Base64 ByteCodec = base64Codec{}

type base64Codec struct{}

func (base64Codec) Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func (base64Codec) Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
