package langpack

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// bump when binaryPayload changes
const binarySchemaVersion uint16 = 1

type binaryPayload struct {
	Schema  uint16
	Entries map[string]string
}

// Encode writes the compiled form of lp.
func (lp *Langpack) Encode(w io.Writer) error {
	payload := binaryPayload{
		Schema:  binarySchemaVersion,
		Entries: lp.snapshot(),
	}
	if err := msgpack.NewEncoder(w).Encode(&payload); err != nil {
		return fmt.Errorf("failed to encode language pack: %w", err)
	}
	return nil
}

// Decode reads a pack written by Encode.
func Decode(r io.Reader) (*Langpack, error) {
	var payload binaryPayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode language pack: %w", err)
	}
	if payload.Schema != binarySchemaVersion {
		return nil, fmt.Errorf("unsupported language pack schema %d (want %d)", payload.Schema, binarySchemaVersion)
	}
	if payload.Entries == nil {
		payload.Entries = map[string]string{}
	}
	return &Langpack{entries: payload.Entries}, nil
}
