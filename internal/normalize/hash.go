package normalize

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// FileHash computes the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ValueHash computes a stable SHA-256 over a row number and its raw and
// normalized values, null-separated.
func ValueHash(rowNum int64, raw, normalized string) []byte {
	h := sha256.New()
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(rowNum))
	h.Write(buf)
	h.Write([]byte(raw))
	h.Write([]byte{0})
	h.Write([]byte(normalized))
	h.Write([]byte{0})
	return h.Sum(nil)
}
