package mapdec

import (
	"io"
	"sync"

	jsonsrc "github.com/mapdec/mapdec/fieldsource/json"
)

// FieldSource abstracts the key/value stream being decoded. Keys arrive in
// arbitrary but stable order; after each key exactly one of NextValue or
// Skip must be called before the next NextKey. Sources exhaust
// deterministically by reporting ok=false.
//
// The concrete serialization format (JSON, YAML, in-memory map) is entirely
// the source's concern; the decoder sees only keys and raw values.
type FieldSource interface {
	// NextKey yields the next key, or ok=false on exhaustion.
	NextKey() (key string, ok bool, err error)
	// NextValue materializes the raw value for the most recent key.
	NextValue() (any, error)
	// Skip discards the value for the most recent key.
	Skip() error
}

// SourceDriver converts serialized input into a FieldSource via a pluggable
// SPI. The default implementation is based on encoding/json and may be
// swapped with SetSourceDriver (for example with the go-json driver in
// fieldsource/gojson).
type SourceDriver interface {
	NewReader(r io.Reader) FieldSource
	NewBytes(b []byte) FieldSource
	Name() string
}

var (
	sourceDriverMu      sync.RWMutex
	currentSourceDriver SourceDriver = defaultSourceDriver{}
)

// SetSourceDriver replaces the global source driver; nil values are ignored.
func SetSourceDriver(d SourceDriver) {
	if d == nil {
		return
	}
	sourceDriverMu.Lock()
	currentSourceDriver = d
	sourceDriverMu.Unlock()
}

// UseDefaultSourceDriver restores the default encoding/json-backed driver.
func UseDefaultSourceDriver() {
	sourceDriverMu.Lock()
	currentSourceDriver = defaultSourceDriver{}
	sourceDriverMu.Unlock()
}

func getSourceDriver() SourceDriver {
	sourceDriverMu.RLock()
	d := currentSourceDriver
	sourceDriverMu.RUnlock()
	return d
}

// defaultSourceDriver wraps the encoding/json implementation.
type defaultSourceDriver struct{}

func (defaultSourceDriver) NewReader(r io.Reader) FieldSource { return jsonsrc.NewReader(r) }
func (defaultSourceDriver) NewBytes(b []byte) FieldSource     { return jsonsrc.NewBytes(b) }
func (defaultSourceDriver) Name() string                      { return "encoding/json" }

// JSONReader wraps an io.Reader holding a JSON object as a FieldSource.
func JSONReader(r io.Reader) FieldSource { return getSourceDriver().NewReader(r) }

// JSONBytes wraps a byte slice holding a JSON object as a FieldSource.
func JSONBytes(b []byte) FieldSource { return getSourceDriver().NewBytes(b) }
