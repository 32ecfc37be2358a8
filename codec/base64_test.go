package codec_test

import (
	"bytes"
	"testing"

	"github.com/mapdec/mapdec/codec"
)

func TestBase64_RoundTrip(t *testing.T) {
	in := []byte{0x00, 0x01, 0xfe, 0xff, 'a', 'b', 'c'}
	s := codec.Base64.Encode(in)
	out, err := codec.Base64.Decode(s)
	if err != nil {
		t.Fatalf("decode err=%v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("round trip mismatch: in=%v out=%v", in, out)
	}
}

func TestBase64_RejectsMalformed(t *testing.T) {
	if _, err := codec.Base64.Decode("!!not-base64!!"); err == nil {
		t.Fatalf("expected error for malformed input")
	}
}
