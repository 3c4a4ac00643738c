package persist

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// EncodeJSON renders snap as its JSON-shape mirror (spec section 12's
// world_serde supplement), using the teacher's fast JSON library rather
// than encoding/json.
func EncodeJSON(snap CaoloWorld) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeJSON parses a JSON-shape snapshot produced by EncodeJSON.
func DecodeJSON(data []byte) (CaoloWorld, error) {
	var snap CaoloWorld
	if err := json.Unmarshal(data, &snap); err != nil {
		return CaoloWorld{}, fmt.Errorf("persist: decoding snapshot: %w", err)
	}
	return snap, nil
}

// CompressBlob zstd-compresses data for storage, the binary form a Store
// persists.
func CompressBlob(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("persist: constructing zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// DecompressBlob reverses CompressBlob.
func DecompressBlob(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("persist: constructing zstd decoder: %w", err)
	}
	defer dec.Close()
	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("persist: decompressing snapshot: %w", err)
	}
	return out, nil
}
