package huffman

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// An artifact is the persisted form of a compressed text: the encoded bits as
// literal '0' and '1' characters, a newline, then the CodeTable as JSON.
//
//     0101110
//     {"a":"0","b":"10","c":"11"}
//

// WriteArtifact writes bits and table to w in artifact form.
func WriteArtifact(w io.Writer, bits string, table CodeTable) error {
	if index := indexNonBit(bits); index >= 0 {
		return errors.Errorf("huffman.WriteArtifact: invalid bit %q at offset %d", bits[index], index)
	}
	raw, err := json.Marshal(table)
	if err != nil {
		return errors.Wrap(err, "huffman.WriteArtifact")
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(bits)
	bw.WriteByte('\n')
	bw.Write(raw)
	return errors.Wrap(bw.Flush(), "huffman.WriteArtifact")
}

// ReadArtifact reads an artifact written by WriteArtifact.  All format errors
// wrap ErrMalformedArtifact; I/O errors are returned as-is, with context.
func ReadArtifact(r io.Reader) (bits string, table CodeTable, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, errors.Wrap(err, "huffman.ReadArtifact")
	}
	return ParseArtifact(data)
}

// ParseArtifact is ReadArtifact for an artifact already in memory.
func ParseArtifact(data []byte) (bits string, table CodeTable, err error) {
	index := bytes.IndexByte(data, '\n')
	if index < 0 {
		return "", nil, errors.Wrap(ErrMalformedArtifact, "missing newline between bits and code table")
	}
	line := bytes.TrimSuffix(data[:index], []byte{'\r'})
	rest := bytes.TrimSpace(data[index+1:])

	bits = string(line)
	if index := indexNonBit(bits); index >= 0 {
		return "", nil, errors.Wrapf(ErrMalformedArtifact, "invalid bit %q at offset %d", bits[index], index)
	}
	if len(rest) == 0 {
		return "", nil, errors.Wrap(ErrMalformedArtifact, "missing code table")
	}
	if err := json.Unmarshal(rest, &table); err != nil {
		if errors.Is(err, ErrMalformedArtifact) {
			return "", nil, err
		}
		return "", nil, errors.Wrapf(ErrMalformedArtifact, "code table: %v", err)
	}
	return bits, table, nil
}
