package cli

import (
	"fmt"

	"github.com/khalid-nowaf/wordtrie/pkg/lexicon"
)

// DefaultQueries are looked up when no query word is given.
var DefaultQueries = []string{"notaword", "ucf", "no", "note", "corg"}

type CountCmd struct {
	Dictionary  string   `short:"d" help:"Dictionary file of whitespace-delimited words." type:"path" default:"dictionary.txt" env:"WORDTRIE_DICTIONARY"`
	Format      string   `help:"Dictionary format (${enum}); auto picks by file extension." enum:"auto,txt,json,csv" default:"auto"`
	Encoding    string   `help:"Dictionary character encoding (${enum})." enum:"utf-8,latin1" default:"utf-8"`
	SkipInvalid bool     `help:"Skip words with characters outside a-z instead of failing."`
	Quiet       bool     `short:"q" help:"Do not echo the dictionary words."`
	Output      string   `short:"o" help:"Output format for query results (${enum})." enum:"text,json,csv" default:"text"`
	Words       []string `arg:"" optional:"" help:"Words to count. Defaults to a fixed sample."`
}

// Run loads the dictionary, echoes it and prints the count of every query
// word. The dictionary is only echoed for text output.
func (cmd *CountCmd) Run(ctx *Context) error {
	logger := ctx.Logger.With("dictionary", cmd.Dictionary)

	writer, err := newWriter(cmd.Output)
	if err != nil {
		return err
	}

	words, err := readDictionary(cmd.Dictionary, cmd.Format, cmd.Encoding)
	if err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}
	logger.Info("dictionary read", "words", len(words))

	if cmd.Output == "text" && !cmd.Quiet {
		for _, word := range words {
			if _, err := fmt.Fprintln(ctx.Stdout, word); err != nil {
				return err
			}
		}
	}

	policy := lexicon.Abort
	if cmd.SkipInvalid {
		policy = lexicon.Skip
	}
	lex := lexicon.New(lexicon.WithPolicy(policy), lexicon.WithLogger(logger))
	defer lex.Close()

	result, err := lex.Load(words)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	logger.Info("dictionary loaded", "result", result.String())

	queries := cmd.Words
	if len(queries) == 0 {
		queries = DefaultQueries
	}
	return writer.Write(ctx.Stdout, lex.Query(queries...))
}
