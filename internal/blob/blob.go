// Package blob serializes a compiled automaton's source pairs to an opaque byte blob and back
// (spec §6), optionally zstd-compressed, so a built-in converter's table can ship as a single
// embedded artifact instead of the Go source literals in internal/ztables.
package blob

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"zhconv/internal/automaton"
)

// magic identifies an uncompressed blob; magicZstd identifies a zstd-compressed one. Both are
// 4 bytes so a reader can dispatch without guessing.
var (
	magic     = [4]byte{'z', 'h', 'c', '1'}
	magicZstd = [4]byte{'z', 'h', 'c', 'z'}
)

// Encode serializes pairs into a blob. When compress is true, the payload (after the plain
// header) is zstd-compressed and tagged with magicZstd instead of magic.
func Encode(pairs []automaton.Pair, compress bool) ([]byte, error) {
	var payload bytes.Buffer
	if err := binary.Write(&payload, binary.LittleEndian, uint32(len(pairs))); err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := writeString(&payload, p.From); err != nil {
			return nil, err
		}
		if err := writeString(&payload, p.To); err != nil {
			return nil, err
		}
		remove := byte(0)
		if p.Remove {
			remove = 1
		}
		if err := payload.WriteByte(remove); err != nil {
			return nil, err
		}
	}

	if !compress {
		out := make([]byte, 0, 4+payload.Len())
		out = append(out, magic[:]...)
		out = append(out, payload.Bytes()...)
		return out, nil
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	compressed := enc.EncodeAll(payload.Bytes(), nil)
	out := make([]byte, 0, 4+len(compressed))
	out = append(out, magicZstd[:]...)
	out = append(out, compressed...)
	return out, nil
}

// Decode reverses Encode, transparently decompressing zstd-tagged blobs.
func Decode(data []byte) ([]automaton.Pair, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("blob: truncated header")
	}
	var header [4]byte
	copy(header[:], data[:4])
	body := data[4:]

	switch header {
	case magic:
		return decodeBody(body)
	case magicZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		raw, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("blob: zstd decode: %w", err)
		}
		return decodeBody(raw)
	default:
		return nil, fmt.Errorf("blob: unrecognized header %v", header)
	}
}

func decodeBody(body []byte) ([]automaton.Pair, error) {
	r := bytes.NewReader(body)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("blob: reading count: %w", err)
	}
	pairs := make([]automaton.Pair, 0, count)
	for i := uint32(0); i < count; i++ {
		from, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("blob: reading from[%d]: %w", i, err)
		}
		to, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("blob: reading to[%d]: %w", i, err)
		}
		removeByte, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("blob: reading remove flag[%d]: %w", i, err)
		}
		pairs = append(pairs, automaton.Pair{From: from, To: to, Remove: removeByte != 0})
	}
	return pairs, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
