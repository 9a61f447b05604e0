package montage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alternateScript = `
section := sections[roll % len(sections)]
if len(sections) > 1 && section == previous {
	section = sections[(roll + 1) % len(sections)]
}
`

func TestSectionPicker_Script(t *testing.T) {
	p, err := NewSectionPicker([]byte(alternateScript))
	require.NoError(t, err)
	p.roll = func(int) int { return 0 }

	sections := []string{"Attack1", "Attack2"}
	first, err := p.Pick(sections)
	require.NoError(t, err)
	second, err := p.Pick(sections)
	require.NoError(t, err)

	assert.Equal(t, "Attack1", first)
	assert.Equal(t, "Attack2", second, "never repeats the previous swing")
}

func TestSectionPicker_CompileError(t *testing.T) {
	_, err := NewSectionPicker([]byte(`section := (`))
	assert.Error(t, err)
}

func TestSectionPicker_FallsBackOnBadResult(t *testing.T) {
	p, err := NewSectionPicker([]byte(`section := "Spin"`))
	require.NoError(t, err)
	p.roll = func(int) int { return 3 }

	got, err := p.Pick([]string{"Attack1", "Attack2"})
	require.NoError(t, err)
	assert.Equal(t, "Attack2", got)
}

func TestSectionPicker_Nil(t *testing.T) {
	var p *SectionPicker
	got, err := p.Pick([]string{"Attack1"})
	require.NoError(t, err)
	assert.Equal(t, "Attack1", got)

	got, err = p.Pick(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
