package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateFourTimesRestoresShape(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			orig := Spec(k).Shape
			s := orig
			for i := 0; i < 4; i++ {
				s = s.Rotate()
			}
			assert.True(t, orig.Equal(s), "after four turns got\n%s\nwant\n%s", s, orig)
		})
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	s := Spec(KindI).Shape
	r := s.Rotate()
	assert.Equal(t, s.Width(), r.Height())
	assert.Equal(t, s.Height(), r.Width())
}

func TestRotateTransposesThenReversesRows(t *testing.T) {
	got := parseShape("###", "#..").Rotate()
	want := parseShape("#.", "#.", "##")
	assert.True(t, want.Equal(got), "got\n%s\nwant\n%s", got, want)
}

func TestSpecReturnsCopy(t *testing.T) {
	s := Spec(KindO).Shape
	s[0][0] = false
	assert.True(t, Spec(KindO).Shape[0][0], "mutating a spec shape must not change the catalog")
}

func TestCatalogHasFourCellsPerPiece(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		n := 0
		for _, row := range Spec(k).Shape {
			for _, on := range row {
				if on {
					n++
				}
			}
		}
		assert.Equal(t, 4, n, "kind %s", k)
	}
}

func TestCellValueRoundTrip(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		got, ok := KindOfCell(k.CellValue())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := KindOfCell(0)
	assert.False(t, ok, "empty cell has no kind")
	_, ok = KindOfCell(KindCount + 1)
	assert.False(t, ok, "out of range value has no kind")
}

func TestDefaultPaletteOrder(t *testing.T) {
	p := DefaultPalette()
	require.Len(t, p, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		assert.Equal(t, Spec(k).Color, p[k])
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds("i, o t")
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindI, KindO, KindT}, kinds)

	_, err = ParseKinds("IX")
	assert.Error(t, err)

	_, err = ParseKinds("  ")
	assert.Error(t, err)
}

func TestSequenceCycles(t *testing.T) {
	seq := NewSequence(KindS, KindZ)
	got := []Kind{seq.Next(), seq.Next(), seq.Next()}
	assert.Equal(t, []Kind{KindS, KindZ, KindS}, got)
}
