package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/khalid-nowaf/wordtrie/pkg/lexicon"
)

// Writer renders query results.
type Writer interface {
	Write(w io.Writer, results []lexicon.QueryResult) error
}

func newWriter(output string) (Writer, error) {
	switch output {
	case "", "text":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", output)
	}
}

// TextWriter prints one "\t<word> : <count>" line per query.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, results []lexicon.QueryResult) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(w, result.String()); err != nil {
			return err
		}
	}
	return nil
}

// JsonWriter prints a JSON array of {"word","count"} objects.
type JsonWriter struct{}

func (JsonWriter) Write(w io.Writer, results []lexicon.QueryResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// CsvWriter prints a word,count table with a header.
type CsvWriter struct{}

func (CsvWriter) Write(w io.Writer, results []lexicon.QueryResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"word", "count"}); err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Word, strconv.Itoa(result.Count)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
