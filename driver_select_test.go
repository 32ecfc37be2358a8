package mapdec_test

import (
	"context"
	"testing"

	mapdec "github.com/mapdec/mapdec"
	"github.com/mapdec/mapdec/fieldsource/gojson"
)

func TestSetSourceDriver_GoJSON(t *testing.T) {
	mapdec.SetSourceDriver(gojson.Driver())
	defer mapdec.UseDefaultSourceDriver()

	s := taskSchema(t)
	rec, err := mapdec.Decode(context.Background(), s,
		mapdec.JSONBytes([]byte(`{"id":9,"tags":["z"],"status":"DONE"}`)))
	if err != nil {
		t.Fatalf("decode err=%v", err)
	}
	if rec["id"] != int64(9) || rec["status"] != int32(1) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestSetSourceDriver_NilIgnored(t *testing.T) {
	mapdec.SetSourceDriver(nil)
	src := mapdec.JSONBytes([]byte(`{}`))
	if src == nil {
		t.Fatalf("default driver must remain installed")
	}
}
