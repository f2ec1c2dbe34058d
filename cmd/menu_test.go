package cmd

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kamusis/advising-cli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = "" +
	"CSCI300,Introduction to Algorithms,CSCI200,MATH201\n" +
	"CSCI100,Introduction to Computer Science\n" +
	"CSCI101\n" +
	"\n" +
	"ENGL101,Composition\n" +
	"CSCI100,Shadowed Title\n" +
	"MATH201,Discrete Mathematics\n" +
	"CSCI200,Data Structures,CSCI101,\n"

// writeCatalog writes body to a temp catalog file and returns its path.
func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func testOptions(catalogPath string) *runtimeOptions {
	return &runtimeOptions{
		catalogPath: catalogPath,
		delimiter:   ',',
		subjects:    []string{"CSCI", "MATH"},
		lockTimeout: time.Second,
		log:         logging.Discard(),
	}
}

func runSession(t *testing.T, opts *runtimeOptions, input string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	s := newSession(opts, strings.NewReader(input), &printer{out: &out, err: &errOut})
	require.NoError(t, s.run(context.Background()))
	return out.String(), errOut.String()
}

func TestSession_QueriesRequireLoad(t *testing.T) {
	out, errOut := runSession(t, testOptions(writeCatalog(t, testCatalog)), "2\n3\n9\n")

	assert.Equal(t, 2, strings.Count(errOut, "Please load course data first."))
	assert.NotContains(t, out, "Enter course number")
	assert.Contains(t, out, "Exiting program.")
}

func TestSession_MalformedLineReportedOnce(t *testing.T) {
	var logs bytes.Buffer
	opts := testOptions(writeCatalog(t, testCatalog))
	opts.log = logging.New(&logs, slog.LevelWarn)

	_, errOut := runSession(t, opts, "1\n9\n")

	assert.Equal(t, 1, strings.Count(errOut, "line 3: skipping malformed line"))
	assert.NotContains(t, logs.String(), "malformed")
}

func TestSession_InvalidChoiceReprompts(t *testing.T) {
	out, _ := runSession(t, testOptions(writeCatalog(t, testCatalog)), "x\n\n5\n10\n9\n")

	assert.Equal(t, 3, strings.Count(out, "Invalid input. Please enter 1, 2, 3, or 9: "))
	assert.Equal(t, 1, strings.Count(out, "Course Management System"))
	assert.Contains(t, out, "Exiting program.")
}

func TestSession_LoadListShow(t *testing.T) {
	input := "1\n2\n3\nCSCI300\n3\nCSCI100\n3\nNOPE999\n9\n"
	out, errOut := runSession(t, testOptions(writeCatalog(t, testCatalog)), input)

	// load
	assert.Contains(t, out, "  ✓  [CSCI100] Introduction to Computer Science")
	assert.Contains(t, out, "  ⚠  [CSCI100] line 6: duplicate course number ignored")
	assert.Contains(t, errOut, "line 3: skipping malformed line: CSCI101")
	assert.Contains(t, out, "6 courses loaded (5 new, 1 duplicate, 1 malformed)")

	// list
	assert.Contains(t, out, "  CSCI100  Introduction to Computer Science\n")
	assert.NotContains(t, out, "  ENGL101  Composition")
	i100 := strings.Index(out, "  CSCI100  ")
	i200 := strings.Index(out, "  CSCI200  ")
	i300 := strings.Index(out, "  CSCI300  ")
	i201 := strings.Index(out, "  MATH201  ")
	require.True(t, i100 >= 0 && i200 >= 0 && i300 >= 0 && i201 >= 0, out)
	assert.True(t, i100 < i200 && i200 < i300 && i300 < i201, "courses out of order:\n%s", out)

	// show
	assert.Contains(t, out, "CSCI300: Introduction to Algorithms\n  Prerequisites: CSCI200, MATH201\n")
	assert.Contains(t, out, "CSCI100: Introduction to Computer Science\n  No prerequisites required.\n")
	assert.Contains(t, out, "  -  [NOPE999] course not found")
	assert.Contains(t, out, "Exiting program.")
}

func TestSession_LoadFailureKeepsQueriesDisabled(t *testing.T) {
	opts := testOptions(filepath.Join(t.TempDir(), "missing.csv"))
	out, errOut := runSession(t, opts, "1\n2\n9\n")

	assert.Contains(t, errOut, "cannot open catalog")
	assert.Contains(t, errOut, "Please load course data first.")
	assert.Contains(t, out, "Exiting program.")
}

func TestSession_ReloadAfterFailureIsDisabled(t *testing.T) {
	p := writeCatalog(t, testCatalog)
	opts := testOptions(p)

	var out, errOut bytes.Buffer
	s := newSession(opts, strings.NewReader("1\n"), &printer{out: &out, err: &errOut})
	require.NoError(t, s.run(context.Background()))
	require.True(t, s.loaded)

	require.NoError(t, os.Remove(p))
	s.in = bufio.NewScanner(strings.NewReader("1\n2\n9\n"))
	require.NoError(t, s.run(context.Background()))
	assert.False(t, s.loaded)
	assert.Contains(t, errOut.String(), "Please load course data first.")
}

func TestSession_OnlyMalformedLines(t *testing.T) {
	out, errOut := runSession(t, testOptions(writeCatalog(t, "CSCI100\nMATH201,\n")), "1\n2\n9\n")

	assert.Contains(t, out, "no courses found in")
	assert.Contains(t, errOut, "Please load course data first.")
}

func TestSession_NoSubjectMatches(t *testing.T) {
	out, _ := runSession(t, testOptions(writeCatalog(t, "ENGL101,Composition\n")), "1\n2\n9\n")

	assert.Contains(t, out, "No CSCI or MATH courses found.")
}

func TestSession_EndOfInput(t *testing.T) {
	out, _ := runSession(t, testOptions(writeCatalog(t, testCatalog)), "1\n3\n")

	assert.Contains(t, out, "Enter course number: ")
	assert.NotContains(t, out, "Exiting program.")
}
