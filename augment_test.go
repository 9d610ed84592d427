package pflagx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugmentAppendsDefault(t *testing.T) {
	p := New("t", WithoutGeneralGroup())
	o, err := p.Add(Option{Default: 8080, Help: "port to listen on"}, "-p", "--port")
	require.NoError(t, err)

	p.augmentDefaults()
	assert.Equal(t, "port to listen on. Default: %default", o.Help)
	assert.Equal(t, 1, strings.Count(o.Help, "%default"))
}

func TestAugmentIsIdempotent(t *testing.T) {
	p := New("t", WithoutGeneralGroup())
	o, err := p.Add(Option{Default: "x", Help: "a thing"}, "--thing")
	require.NoError(t, err)

	p.augmentDefaults()
	once := o.Help
	p.augmentDefaults()
	assert.Equal(t, once, o.Help)
	assert.Equal(t, 1, strings.Count(o.Help, "%default"))
}

func TestAugmentPunctuation(t *testing.T) {
	cases := []struct {
		help, want string
	}{
		{"run fast", "run fast. Default: %default"},
		{"run fast.", "run fast. Default: %default"},
		{"run fast!", "run fast! Default: %default"},
	}
	for _, c := range cases {
		p := New("t", WithoutGeneralGroup())
		o, err := p.Add(Option{Default: 1, Help: c.help}, "--speed")
		require.NoError(t, err)
		p.augmentDefaults()
		assert.Equal(t, c.want, o.Help)
	}
}

func TestAugmentSkips(t *testing.T) {
	p := New("t", WithoutGeneralGroup())

	flag, err := p.Add(Option{Action: StoreTrue, Default: false, Help: "a flag"}, "--flag")
	require.NoError(t, err)
	empty, err := p.Add(Option{Default: 1, Help: ""}, "--silent")
	require.NoError(t, err)
	manual, err := p.Add(Option{Default: 1, Help: "already says %default"}, "--manual")
	require.NoError(t, err)
	blank, err := p.Add(Option{Default: "", Help: "blank default"}, "--blank")
	require.NoError(t, err)

	p.augmentDefaults()
	assert.Equal(t, "a flag", flag.Help)                   // not a store action
	assert.Empty(t, empty.Help)                            // no help text
	assert.Equal(t, "already says %default", manual.Help)  // guard substring
	assert.Equal(t, "blank default", blank.Help)           // empty default string
}

func TestAugmentNilDefaultRendersNone(t *testing.T) {
	p := New("t", WithoutGeneralGroup(), WithWidth(80))
	o, err := p.Add(Option{Help: "no default set"}, "--thing")
	require.NoError(t, err)

	p.augmentDefaults()
	assert.True(t, strings.HasSuffix(o.Help, "Default: %default"))
	assert.Contains(t, p.FormatHelp(), "Default: None")
}

func TestAugmentCoversGroups(t *testing.T) {
	p := New("t", WithoutGeneralGroup())
	g := p.AddGroup("Tuning")
	o, err := g.Add(Option{Default: 3, Help: "retries"}, "--retries")
	require.NoError(t, err)

	p.augmentDefaults()
	assert.Equal(t, "retries. Default: %default", o.Help)
}

func TestAugmentRunsOnParse(t *testing.T) {
	p := New("t", WithoutGeneralGroup())
	o, err := p.Add(Option{Default: 5, Help: "workers"}, "--workers")
	require.NoError(t, err)

	_, _, err = p.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "workers. Default: %default", o.Help)
}
