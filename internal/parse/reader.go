package parse

import (
	"bufio"
	"bytes"
	"os"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

// ReadSession decodes a session log line by line. Lines that fail to decode
// are skipped rather than failing the whole file; their count is returned
// alongside the records.
func ReadSession(path string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	skipped := 0

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		rec, err := DecodeRecord(line)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, *rec)
	}

	return records, skipped, scanner.Err()
}
