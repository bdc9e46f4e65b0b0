// Package blast builds NCBI BLAST submission requests for single sequences.
package blast

import (
	"fmt"
	"net/url"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// Program is a BLAST program name.
type Program string

const (
	Blastp Program = "blastp"
	Blastn Program = "blastn"
)

// Database is an NCBI database name.
type Database string

const (
	NR Database = "nr"
	NT Database = "nt"
)

const submitBase = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

// Request carries everything an external launcher needs to submit one
// sequence to NCBI BLAST.
type Request struct {
	Program  Program
	Database Database
	// Payload is single-entry FASTA: ">header\nsequence\n".
	Payload string
}

// NewRequest builds the BLAST request for an entry: protein sequences go to
// blastp against nr, nucleotide sequences to blastn against nt.
func NewRequest(t seq.Type, entry seq.Entry) Request {
	program, database := Blastp, NR
	if t == seq.Nucleotide {
		program, database = Blastn, NT
	}
	return Request{
		Program:  program,
		Database: database,
		Payload:  fmt.Sprintf(">%s\n%s\n", entry.Header, entry.Sequence),
	}
}

// Validate checks that the program and database are ones NCBI accepts here.
func (r Request) Validate() error {
	switch r.Program {
	case Blastp, Blastn:
	default:
		return fmt.Errorf("unknown BLAST program %q", r.Program)
	}
	switch r.Database {
	case NR, NT:
	default:
		return fmt.Errorf("unknown BLAST database %q", r.Database)
	}
	if r.Payload == "" {
		return fmt.Errorf("empty BLAST payload")
	}
	return nil
}

// SubmitURL returns the NCBI web submission URL with the query prefilled.
func (r Request) SubmitURL() string {
	q := url.Values{}
	q.Set("CMD", "Web")
	q.Set("PROGRAM", string(r.Program))
	q.Set("DATABASE", string(r.Database))
	q.Set("QUERY", r.Payload)
	return submitBase + "?" + q.Encode()
}
