package trace

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/klauspost/compress/zstd"
)

// ReadAll decodes every line of a trace file into a T.
func ReadAll[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []T
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		var v T
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, sc.Err()
}
