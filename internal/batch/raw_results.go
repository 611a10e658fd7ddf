package batch

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

type rawRecord struct {
	Re, Im   float64
	Category int32
}

// SaveRawResults writes results as little-endian binary: an int32 record
// count, then per result float64 real part, float64 imaginary part and int32
// category.
func SaveRawResults(path string, results []Result) error {
	if int64(len(results)) > int64(^uint32(0)>>1) {
		return fmt.Errorf("too many results for an int32 header: %d", len(results))
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(len(results))); err != nil {
		return err
	}

	recs := make([]rawRecord, len(results))
	for i, r := range results {
		recs[i] = rawRecord{Re: real(r.Value), Im: imag(r.Value), Category: int32(r.Category)}
	}
	if len(recs) > 0 {
		if err := binary.Write(w, binary.LittleEndian, recs); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
