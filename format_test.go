package pflagx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByShortSpelling(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	for _, s := range []string{"-a", "-c", "-b"} {
		_, err := p.Add(Option{Action: StoreTrue, Help: "h"}, s)
		require.NoError(t, err)
	}

	out := p.FormatHelp()
	ia, ib, ic := strings.Index(out, "-a"), strings.Index(out, "-b"), strings.Index(out, "-c")
	assert.True(t, ia < ib && ib < ic, "want -a before -b before -c in:\n%s", out)
}

func TestSortFallsBackToLongSpelling(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	_, err := p.Add(Option{Action: StoreTrue, Help: "h"}, "--zebra")
	require.NoError(t, err)
	_, err = p.Add(Option{Action: StoreTrue, Help: "h"}, "-m")
	require.NoError(t, err)
	_, err = p.Add(Option{Action: StoreTrue, Help: "h"}, "--apple")
	require.NoError(t, err)

	out := p.FormatHelp()
	assert.True(t, strings.Index(out, "--apple") < strings.Index(out, "-m"))
	assert.True(t, strings.Index(out, "-m") < strings.Index(out, "--zebra"))
}

func TestSortIsStableAcrossRenders(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	for _, s := range []string{"-c", "-a", "-b"} {
		_, err := p.Add(Option{Action: StoreTrue, Help: "h"}, s)
		require.NoError(t, err)
	}
	first := p.FormatHelp()
	assert.Equal(t, first, p.FormatHelp())
	assert.Equal(t, first, p.FormatHelp())
}

func TestGroupsSortedByTitle(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	zg := p.AddGroup("Zeta")
	ag := p.AddGroup("Alpha")
	_, err := zg.Add(Option{Action: StoreTrue, Help: "h"}, "--zz")
	require.NoError(t, err)
	_, err = ag.Add(Option{Action: StoreTrue, Help: "h"}, "--aa")
	require.NoError(t, err)

	out := p.FormatHelp()
	assert.True(t, strings.Index(out, "Alpha:") < strings.Index(out, "Zeta:"), out)
}

func TestDescriptionKeepsLineBreaks(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80),
		WithDescription("first line\nsecond line"))

	assert.Contains(t, p.FormatHelp(), "first line\nsecond line")
}

func TestEpilogKeepsLineBreaks(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80),
		WithEpilog("Examples:\n  t --thing"))

	assert.Contains(t, p.FormatHelp(), "Examples:\n  t --thing")
}

func TestFlagRendering(t *testing.T) {
	p := New("t", WithoutGeneralGroup())
	file, err := p.Add(Option{Help: "h"}, "-f", "--file")
	require.NoError(t, err)
	assert.Equal(t, "-f FILE, --file=FILE", formatFlags(file))

	flag, err := p.Add(Option{Action: StoreTrue, Help: "h"}, "-q", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "-q, --quiet", formatFlags(flag))

	meta, err := p.Add(Option{Metavar: "PATH", Help: "h"}, "--out")
	require.NoError(t, err)
	assert.Equal(t, "--out=PATH", formatFlags(meta))
}

func TestLongFlagListSpillsHelpToNextLine(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	o, err := p.Add(Option{Help: "where results go"}, "-o", "--output-directory")
	require.NoError(t, err)

	f := p.newFormatter()
	out := f.formatOption(o, rootIndent)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "  "+formatFlags(o), lines[0])
	assert.Equal(t, strings.Repeat(" ", f.helpPosition)+"where results go", lines[1])
}

func TestShortFlagsShareLineWithHelp(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	o, err := p.Add(Option{Action: StoreTrue, Help: "be loud"}, "-l")
	require.NoError(t, err)

	f := p.newFormatter()
	out := f.formatOption(o, rootIndent)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "  -l"))
	assert.True(t, strings.HasSuffix(lines[0], "be loud"))
}

func TestHelpTextLineBreaksContinueAtHelpColumn(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	o, err := p.Add(Option{Action: StoreTrue, Help: "first\nsecond"}, "-x")
	require.NoError(t, err)

	f := p.newFormatter()
	lines := strings.Split(strings.TrimRight(f.formatOption(o, rootIndent), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "first"))
	assert.Equal(t, strings.Repeat(" ", f.helpPosition)+"second", lines[1])
}

func TestOptionWithoutHelpEndsInNewline(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	o, err := p.Add(Option{Action: StoreTrue}, "-x")
	require.NoError(t, err)

	f := p.newFormatter()
	out := f.formatOption(o, rootIndent)
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestUsageLine(t *testing.T) {
	p := New("prog", WithoutGeneralGroup(), WithWidth(80))
	assert.True(t, strings.HasPrefix(p.FormatHelp(), "Usage: prog [options]\n"))

	p = New("prog", WithoutGeneralGroup(), WithWidth(80),
		WithUsage("%prog [options] FILE..."))
	assert.True(t, strings.HasPrefix(p.FormatHelp(), "Usage: prog [options] FILE...\n"))
}

func TestWrapPreserving(t *testing.T) {
	got := wrapPreserving("alpha beta gamma\n\ndelta", 13, 2)
	want := "  alpha beta\n  gamma\n\n  delta\n"
	assert.Equal(t, want, got)
}
