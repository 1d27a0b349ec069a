package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_RenderSingle(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, PlainStyles())

	require.NoError(t, term.Render(SingleSections(analyze(t, "7"))))
	require.NoError(t, term.Footer("Platform: linux amd64"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Input: 7", lines[0])
	assert.Equal(t, "Prime: yes", lines[5])
	assert.Equal(t, Separator, lines[len(lines)-2])
	assert.Equal(t, "Platform: linux amd64", lines[len(lines)-1])
}

func TestTerminal_RenderCompareSeparatesSections(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, PlainStyles())

	sections := CompareSections(compare(t, "6", "3"))
	require.NoError(t, term.Render(sections))

	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"+Separator+"\n")
	want := make([]string, len(sections))
	for i, s := range sections {
		want[i] = s.Title + "\n" + s.Body
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminal_RenderUntitledBlocks(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, PlainStyles())

	require.NoError(t, term.Render([]Section{{Body: "Input: 4"}, {Body: "Type: Integer"}}))
	assert.Equal(t, "Input: 4\n"+Separator+"\nType: Integer\n", buf.String())
}

func TestTerminal_RenderError(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, PlainStyles())

	require.NoError(t, term.Render([]Section{ErrorSection("Invalid number")}))
	assert.Equal(t, "Invalid number\n", buf.String())
}

func TestTerminal_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, ColorStyles())

	require.NoError(t, term.Render(CompareSections(compare(t, "6", "3"))))
	out := buf.String()
	assert.Contains(t, out, TitleArithmetic)
	assert.Contains(t, out, "Sum:")
	assert.Contains(t, out, "First is a multiple of Second")
}
