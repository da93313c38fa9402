package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrDictionaryNotFound is returned when the dictionary path cannot be opened
// because it does not exist.
var ErrDictionaryNotFound = errors.New("file not found")

// maxWordSize bounds a single whitespace-delimited token.
const maxWordSize = 1 << 20

// readDictionary opens path and returns its words in file order.
func readDictionary(path, format, encoding string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	reader, err := decodeReader(file, encoding)
	if err != nil {
		return nil, err
	}

	switch detectFormat(path, format) {
	case "json":
		return parseJson(reader)
	case "csv":
		return parseCsv(reader)
	default:
		return parseTxt(reader)
	}
}

// decodeReader converts the dictionary bytes to UTF-8.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// detectFormat resolves "auto" from the file extension.
func detectFormat(path, format string) string {
	if format != "" && format != "auto" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	default:
		return "txt"
	}
}

// parseTxt splits the input on any whitespace.
func parseTxt(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxWordSize)
	scanner.Split(bufio.ScanWords)

	words := []string{}
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// parseJson reads a JSON array of strings.
func parseJson(r io.Reader) ([]string, error) {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	words := []string{}
	for decoder.More() {
		var word string
		if err := decoder.Decode(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	// Read closing bracket of the array
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return words, nil
}

// parseCsv takes the first column of every record. A header whose first
// field is "word" is skipped.
func parseCsv(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	words := []string{}
	for line := 0; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 0 && strings.EqualFold(record[0], "word") {
			continue
		}
		words = append(words, record[0])
	}
	return words, nil
}
