package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/kamusis/advising-cli/internal/logging"
)

// Status is what happened to one non-empty input line.
type Status int

const (
	StatusInserted Status = iota
	StatusDuplicate
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusInserted:
		return "inserted"
	case StatusDuplicate:
		return "duplicate"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome records one non-empty input line.
type Outcome struct {
	Line   int // 1-based line number
	Text   string
	Status Status
	Course catalog.Course // zero when Status is StatusMalformed
	Err    error          // set when Status is StatusMalformed
}

// Result is returned by Load and LoadFile.
type Result struct {
	Outcomes []Outcome // in input order; empty lines are omitted

	Accepted   int // lines that parsed, inserted or not
	Inserted   int // lines that added a new course
	Duplicates int // lines whose identifier was already present
	Malformed  int // lines rejected for too few fields
}

// Loaded reports whether at least one line was accepted.
func (r *Result) Loaded() bool {
	return r != nil && r.Accepted > 0
}

// Options controls a load.
type Options struct {
	Delimiter   rune          // zero means DefaultDelimiter
	LockTimeout time.Duration // LoadFile only; zero means defaultLockTimeout
	Logger      *logging.Logger
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

func (o Options) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

// Load reads catalog lines from r and inserts them into idx.
//
// Malformed lines are recorded in the result and do not stop the load. Lines
// have no length limit. The returned error is non-nil only when reading r
// fails or ctx is cancelled; the partial result is returned alongside it.
func Load(ctx context.Context, r io.Reader, idx *catalog.Index, opts Options) (*Result, error) {
	log := opts.logger()
	delim := opts.delimiter()
	result := &Result{}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			log.LogLoad(ctx, result.Accepted, result.Inserted, result.Duplicates, result.Malformed, readErr)
			return result, fmt.Errorf("cannot read catalog: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		text := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if text != "" {
			result.addLine(ctx, log, idx, lineNo, text, delim)
		}
		if readErr == io.EOF {
			break
		}
	}

	log.LogLoad(ctx, result.Accepted, result.Inserted, result.Duplicates, result.Malformed, nil)
	return result, nil
}

// addLine parses one non-empty line and records its outcome.
func (r *Result) addLine(ctx context.Context, log *logging.Logger, idx *catalog.Index, lineNo int, text string, delim rune) {
	course, err := ParseLine(text, delim)
	if err != nil {
		log.LogMalformed(ctx, lineNo, err)
		r.Malformed++
		r.Outcomes = append(r.Outcomes, Outcome{
			Line:   lineNo,
			Text:   text,
			Status: StatusMalformed,
			Err:    err,
		})
		return
	}

	inserted := idx.Insert(course)
	log.LogInsert(ctx, lineNo, course.ID, inserted)
	r.Accepted++
	status := StatusInserted
	if inserted {
		r.Inserted++
	} else {
		r.Duplicates++
		status = StatusDuplicate
	}
	r.Outcomes = append(r.Outcomes, Outcome{
		Line:   lineNo,
		Text:   text,
		Status: status,
		Course: course,
	})
}
