package seq

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseEntries splits raw FASTA text into entries. Lines starting with '>'
// open a new entry; all other non-blank lines accumulate into the current
// entry's sequence. Input with no '>' lines at all is treated as one raw
// sequence. Entries whose normalized sequence is empty are dropped, and
// blank headers are assigned "Sequence N" by 1-based position.
func ParseEntries(text string, t Type) []Entry {
	var entries []Entry
	var header string
	var buf strings.Builder
	inEntry := false

	commit := func() {
		if !inEntry {
			return
		}
		normalized := Normalize(buf.String(), t)
		if normalized != "" {
			entries = append(entries, Entry{Header: header, Sequence: normalized})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			commit()
			header = strings.TrimSpace(line[1:])
			buf.Reset()
			inEntry = true
			continue
		}
		if line == "" {
			continue
		}
		buf.WriteString(line)
	}
	commit()

	// No headers at all: treat the whole input as one raw sequence.
	if !inEntry {
		normalized := Normalize(text, t)
		if normalized != "" {
			entries = append(entries, Entry{Sequence: normalized})
		}
	}

	for i := range entries {
		if entries[i].Header == "" {
			entries[i].Header = fmt.Sprintf("Sequence %d", i+1)
		}
	}

	return entries
}

// Parser streams FASTA entries from a file or reader.
type Parser struct {
	scanner    *bufio.Scanner
	file       *os.File
	gzipReader *gzip.Reader
	seqType    Type

	index   int
	header  string
	buf     strings.Builder
	started bool
	done    bool
}

// NewParser creates a streaming parser for the given path. Supports plain
// and gzipped FASTA ("-" reads stdin).
func NewParser(path string, t Type) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin, t), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta file: %w", err)
	}

	p := &Parser{file: file, seqType: t}

	// Check for gzip magic bytes
	magic := make([]byte, 2)
	_, err = file.Read(magic)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read fasta header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek fasta file: %w", err)
	}

	if magic[0] == 0x1f && magic[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.scanner = newScanner(p.gzipReader)
	} else {
		p.scanner = newScanner(file)
	}

	return p, nil
}

// NewParserFromReader creates a streaming parser from an io.Reader.
func NewParserFromReader(r io.Reader, t Type) *Parser {
	return &Parser{scanner: newScanner(r), seqType: t}
}

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	// Long sequence lines are common in machine-written FASTA.
	buf := make([]byte, 0, 64*1024)
	s.Buffer(buf, 10*1024*1024)
	return s
}

// Next returns the next entry, or nil, nil at end of input. Entries with an
// empty normalized sequence are skipped; blank headers are defaulted the
// same way ParseEntries defaults them.
func (p *Parser) Next() (*Entry, error) {
	if p.done {
		return nil, nil
	}

	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if strings.HasPrefix(line, ">") {
			entry := p.commit()
			p.header = strings.TrimSpace(line[1:])
			p.buf.Reset()
			p.started = true
			if entry != nil {
				return entry, nil
			}
			continue
		}
		if line == "" {
			continue
		}
		p.buf.WriteString(line)
		// Content before any header: single raw-sequence input.
		if !p.started {
			p.started = true
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan fasta: %w", err)
	}

	p.done = true
	return p.commit(), nil
}

// commit finalizes the in-progress entry, or returns nil if it is empty.
func (p *Parser) commit() *Entry {
	if !p.started {
		return nil
	}
	normalized := Normalize(p.buf.String(), p.seqType)
	if normalized == "" {
		return nil
	}
	p.index++
	header := p.header
	if header == "" {
		header = fmt.Sprintf("Sequence %d", p.index)
	}
	return &Entry{Header: header, Sequence: normalized}
}

// ReadAll drains the parser and returns every remaining entry.
func (p *Parser) ReadAll() ([]Entry, error) {
	var entries []Entry
	for {
		e, err := p.Next()
		if err != nil {
			return nil, err
		}
		if e == nil {
			return entries, nil
		}
		entries = append(entries, *e)
	}
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
