package voxel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/voxlath/phase"
)

// Header keys in the order they are written.
const (
	keyVersion    = "Version"
	keyXSize      = "X_Size"
	keyYSize      = "Y_Size"
	keyZSize      = "Z_Size"
	keyResolution = "Image_Resolution"
)

// tokenizer splits a stream into whitespace-separated tokens and remembers
// the line each one started on.
type tokenizer struct {
	r      *bufio.Reader
	line   int
	peeked bool
	tok    string
	tokAt  int
	err    error
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReaderSize(r, 1<<16), line: 1}
}

// next returns the next token and its line, or io.EOF.
func (t *tokenizer) next() (string, int, error) {
	if t.peeked {
		t.peeked = false
		return t.tok, t.tokAt, t.err
	}

	return t.scan()
}

// peek returns the next token without consuming it.
func (t *tokenizer) peek() (string, int, error) {
	if !t.peeked {
		t.tok, t.tokAt, t.err = t.scan()
		t.peeked = true
	}

	return t.tok, t.tokAt, t.err
}

func (t *tokenizer) scan() (string, int, error) {
	var sb strings.Builder
	start := 0
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if sb.Len() > 0 && errors.Is(err, io.EOF) {
				return sb.String(), start, nil
			}
			return "", t.line, err
		}
		switch b {
		case '\n':
			t.line++
			fallthrough
		case ' ', '\t', '\r', '\v', '\f':
			if sb.Len() > 0 {
				return sb.String(), start, nil
			}
		default:
			if sb.Len() == 0 {
				start = t.line
			}
			sb.WriteByte(b)
		}
	}
}

// Read parses a microstructure file: an optional header followed by X·Y·Z
// phase ids, z outermost and x fastest.
// Returns a *ParseError (matching ErrMalformedInput) for bad content,
// including non-positive header sizes, and ErrGridAllocation for positive
// dims whose volume exceeds MaxVoxels.
// Complexity: O(V).
func Read(r io.Reader) (*Grid, error) {
	t := newTokenizer(r)
	version, resolution := LegacyVersion, DefaultResolution
	d := Dims{X: LegacySize, Y: LegacySize, Z: LegacySize}

	headerSeen, versionSeen := false, false
	for {
		tok, line, err := t.peek()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("voxel: read header: %w", err)
		}
		if err != nil || !strings.HasSuffix(tok, ":") {
			break
		}
		_, _, _ = t.next()
		headerSeen = true
		key := strings.TrimSuffix(tok, ":")
		val, vline, err := t.next()
		if err != nil {
			return nil, &ParseError{Line: line, Token: tok, Reason: "header key without value"}
		}
		switch key {
		case keyVersion:
			version, err = parseFloat(val, vline)
			versionSeen = true
		case keyXSize:
			d.X, err = parseSize(val, vline)
		case keyYSize:
			d.Y, err = parseSize(val, vline)
		case keyZSize:
			d.Z, err = parseSize(val, vline)
		case keyResolution:
			resolution, err = parseFloat(val, vline)
		default:
			return nil, &ParseError{Line: line, Token: tok, Reason: "unknown header key"}
		}
		if err != nil {
			return nil, err
		}
	}
	if headerSeen && !versionSeen {
		// a header without a Version line still marks a current-format file
		version = CurrentVersion
	}

	g, err := New(d)
	if err != nil {
		return nil, err
	}
	g.Version, g.Resolution = version, resolution

	for i := range g.cells {
		tok, line, err := t.next()
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Line: line, Reason: fmt.Sprintf("truncated: got %d of %d voxels", i, len(g.cells))}
		}
		if err != nil {
			return nil, fmt.Errorf("voxel: read voxels: %w", err)
		}
		n, perr := strconv.Atoi(tok)
		if perr != nil {
			return nil, &ParseError{Line: line, Token: tok, Reason: "phase id is not an integer"}
		}
		if n < 0 || n > 255 {
			return nil, &ParseError{Line: line, Token: tok, Reason: "phase id outside 0..255"}
		}
		g.cells[i] = phase.ID(n)
	}
	if tok, line, err := t.next(); err == nil {
		return nil, &ParseError{Line: line, Token: tok, Reason: fmt.Sprintf("more than %d voxels", len(g.cells))}
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("voxel: read voxels: %w", err)
	}

	return g, nil
}

func parseFloat(s string, line int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Token: s, Reason: "expected a number"}
	}

	return v, nil
}

func parseSize(s string, line int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Line: line, Token: s, Reason: "expected an integer size"}
	}
	if v <= 0 {
		return 0, &ParseError{Line: line, Token: s, Reason: "size must be positive"}
	}

	return v, nil
}

// Write emits g with a full header, one phase id per line, in file order.
// Complexity: O(V).
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriterSize(w, 1<<16)
	version := g.Version
	if version <= 0 {
		version = CurrentVersion
	}
	resolution := g.Resolution
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	d := g.Dims()
	fmt.Fprintf(bw, "%s: %s\n", keyVersion, formatFloat(version))
	fmt.Fprintf(bw, "%s: %d\n", keyXSize, d.X)
	fmt.Fprintf(bw, "%s: %d\n", keyYSize, d.Y)
	fmt.Fprintf(bw, "%s: %d\n", keyZSize, d.Z)
	fmt.Fprintf(bw, "%s: %s\n", keyResolution, formatFloat(resolution))
	buf := make([]byte, 0, 4)
	for _, id := range g.cells {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("voxel: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("voxel: write: %w", err)
	}

	return nil
}

// formatFloat writes the shortest decimal that parses back to v, keeping a
// ".0" on whole numbers.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("voxel: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteFile creates path and calls Write.
func WriteFile(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("voxel: create %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
