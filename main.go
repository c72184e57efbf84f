package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"wordspan/counter"
	"wordspan/exporter"
	"wordspan/parser"
	"wordspan/pkg/wordspan"
	"wordspan/tokenizer"
)

var cli struct {
	File     string `arg:"" optional:"" type:"path" help:"Source file to analyze. Reads from stdin (pipe) when omitted."`
	Mode     string `short:"m" enum:"camel,entire" default:"camel" help:"Word splitting: 'camel' also splits camelCase words, 'entire' keeps them whole."`
	Encoding string `short:"e" enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8" help:"Input encoding."`
	JSON     bool   `short:"j" help:"Output results as JSON instead of a table."`
	Top      int    `short:"n" default:"0" help:"Only display the N most frequent words (0 = all)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("wordspan"),
		kong.Description("Counts word occurrences in a source file and reports, per word, how many lines it spans and which proportion of the file that covers."),
	)

	var data []byte
	var err error

	// Read from stdin if no file argument is provided
	if cli.File == "" {
		stat, statErr := os.Stdin.Stat()
		if statErr != nil {
			fmt.Fprintf(os.Stderr, "Error checking stdin: %v\n", statErr)
			os.Exit(1)
		}

		if (stat.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "No input: specify a file or pipe data on stdin.")
			os.Exit(1)
		}

		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
	} else {
		data, err = os.ReadFile(cli.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	}

	utf8Data, err := wordspan.ConvertToUTF8(data, cli.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding input: %v\n", err)
		os.Exit(1)
	}

	// Markdown and HTML inputs are reduced to their text before counting.
	code, err := parser.ForFile(cli.File).Parse(bytes.NewReader(utf8Data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting text: %v\n", err)
		os.Exit(1)
	}

	mode := tokenizer.WordsInCamelCase
	if cli.Mode == "entire" {
		mode = tokenizer.EntireWords
	}

	occurrences := tokenizer.NewTokenizer([]byte(code), mode).Tokenize()
	totalLines := counter.CountLines(code)
	entries := counter.Rank(counter.Aggregate(occurrences, totalLines))

	if cli.Top > 0 && cli.Top < len(entries) {
		entries = entries[:cli.Top]
	}

	if cli.JSON {
		if err := exporter.ExportWordsToJSON(entries, len(occurrences), totalLines, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := exporter.ExportWordsToTable(entries, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error displaying table: %v\n", err)
		os.Exit(1)
	}
}
