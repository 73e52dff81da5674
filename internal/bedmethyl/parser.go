package bedmethyl

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parser reads records from a headerless tab-delimited bedmethyl file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a parser for the given file. Plain and gzipped files
// are both supported; use "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bedmethyl file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read bedmethyl file: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek bedmethyl file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader.
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// Next reads the next record. It returns nil, nil at end of input.
func (p *Parser) Next() (*Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read bedmethyl line: %w", err)
		}
		atEOF := err == io.EOF

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if atEOF {
				return nil, nil
			}
			p.lineNumber++
			continue
		}
		p.lineNumber++
		return p.parseLine(line)
	}
}

// ReadAll reads every remaining record.
func (p *Parser) ReadAll() ([]Record, error) {
	var records []Record
	for {
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return records, nil
		}
		records = append(records, *r)
	}
}

// parseLine splits one tab-delimited row into a Record.
func (p *Parser) parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < len(Header) {
		return nil, &MissingColumnError{Line: p.lineNumber, Column: Header[len(fields)]}
	}

	r := &Record{
		Chrom:   fields[0],
		ModCode: fields[3],
		Strand:  fields[5],
		Color:   fields[8],
	}
	if r.Strand != "+" && r.Strand != "-" {
		return nil, &ParseError{Line: p.lineNumber, Message: fmt.Sprintf("invalid strand %q", fields[5])}
	}

	var err error
	for _, col := range []struct {
		idx  int
		dest *int
	}{
		{1, &r.StartPosition},
		{2, &r.EndPosition},
		{4, &r.Score},
		{6, &r.StrandStartPosition},
		{7, &r.StrandEndPosition},
		{9, &r.ValidCoverage},
		{11, &r.NMod},
		{12, &r.NCanonical},
		{13, &r.NOtherMod},
		{14, &r.NDelete},
		{15, &r.NFail},
		{16, &r.NDiff},
		{17, &r.NNocall},
	} {
		*col.dest, err = strconv.Atoi(fields[col.idx])
		if err != nil {
			return nil, &ParseError{Line: p.lineNumber,
				Message: fmt.Sprintf("invalid %s: %s", Header[col.idx], fields[col.idx])}
		}
	}

	r.PercentModified, err = strconv.ParseFloat(fields[10], 64)
	if err != nil {
		return nil, &ParseError{Line: p.lineNumber,
			Message: fmt.Sprintf("invalid percent_modified: %s", fields[10])}
	}

	return r, nil
}

// LineNumber returns the number of the last line read.
func (p *Parser) LineNumber() int {
	return p.lineNumber
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
