package pdfpin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newLetterStore() *Store {
	s := NewStore()
	s.SetPageDimensions(1, letter)
	return s
}

func TestAdd_AssignsIDAndDisplayCache(t *testing.T) {
	s := newLetterStore()

	a := s.Add(1, 100, 700)
	require.NotEmpty(t, a.ID)
	require.Equal(t, 1, a.PageIndex)
	require.InDelta(t, 100.0, a.DisplayX, 1e-9)
	require.InDelta(t, 92.0, a.DisplayY, 1e-9) // pageHeight - y

	b := s.Add(1, 10, 20)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, 2, s.Len())
}

func TestAdd_DoesNotClamp(t *testing.T) {
	// Click positions are bounded by the rendered page; the store trusts them.
	s := newLetterStore()
	a := s.Add(1, -5, 800)
	require.InDelta(t, -5.0, a.X, 1e-9)
	require.InDelta(t, 800.0, a.Y, 1e-9)
}

func TestUpdateFromDrag_ClampsToPage(t *testing.T) {
	s := newLetterStore()
	a := s.Add(1, 100, 700)

	s.UpdateFromDrag(a.ID, -10, 900)
	require.InDelta(t, 0.0, a.X, 1e-9)
	require.InDelta(t, 792.0, a.Y, 1e-9)
	// Display cache follows the clamped value.
	require.InDelta(t, 0.0, a.DisplayX, 1e-9)
	require.InDelta(t, 0.0, a.DisplayY, 1e-9)
}

func TestUpdateFromDrag_UnknownIDIsNoOp(t *testing.T) {
	s := newLetterStore()
	a := s.Add(1, 100, 700)

	s.UpdateFromDrag("nope", 1, 1)
	require.InDelta(t, 100.0, a.X, 1e-9)
	require.InDelta(t, 700.0, a.Y, 1e-9)
}

func TestUpdateFromDrag_LastWriteWins(t *testing.T) {
	s := newLetterStore()
	a := s.Add(1, 100, 700)

	// A drag stream, including a repeated position; re-applying is harmless.
	s.UpdateFromDrag(a.ID, 120, 650)
	s.UpdateFromDrag(a.ID, 130, 640)
	s.UpdateFromDrag(a.ID, 130, 640)
	s.UpdateFromDrag(a.ID, 140, 630)

	require.InDelta(t, 140.0, a.X, 1e-9)
	require.InDelta(t, 630.0, a.Y, 1e-9)
}

func TestUpdateFromDrag_UnknownPageSkipsClamp(t *testing.T) {
	s := NewStore() // no dimensions registered
	a := s.Add(7, 100, 700)

	s.UpdateFromDrag(a.ID, -10, 900)
	require.InDelta(t, -10.0, a.X, 1e-9)
	require.InDelta(t, 900.0, a.Y, 1e-9)
}

func TestUpdateFromUserFrame_SingleAxis(t *testing.T) {
	s := newLetterStore()
	s.SetOrigin(OriginTopLeft)
	a := s.Add(1, 100, 700)

	// Editing only the Y field: 92 from the top is 700 canonical.
	y := 92.0
	s.UpdateFromUserFrame(a.ID, nil, &y)
	require.InDelta(t, 100.0, a.X, 1e-9)
	require.InDelta(t, 700.0, a.Y, 1e-9)

	// Editing only the X field under a right-hand origin mirrors X.
	s.SetOrigin(OriginTopRight)
	x := 512.0
	s.UpdateFromUserFrame(a.ID, &x, nil)
	require.InDelta(t, 100.0, a.X, 1e-9)
	require.InDelta(t, 700.0, a.Y, 1e-9)
}

func TestUpdateFromUserFrame_TrustedNotClamped(t *testing.T) {
	s := newLetterStore()
	s.SetOrigin(OriginTopLeft)
	a := s.Add(1, 100, 700)

	// A field edit may leave the page; it is applied as-is.
	y := -50.0
	s.UpdateFromUserFrame(a.ID, nil, &y)
	require.InDelta(t, 842.0, a.Y, 1e-9) // 792 - (-50)
	require.InDelta(t, -50.0, a.DisplayY, 1e-9)
}

func TestUpdateFromUserFrame_UnknownDimensionsFallsBack(t *testing.T) {
	s := NewStore()
	s.SetOrigin(OriginTopRight)
	a := s.Add(1, 100, 700)

	// Without page dimensions the user frame degrades to canonical.
	x, y := 25.0, 30.0
	s.UpdateFromUserFrame(a.ID, &x, &y)
	require.InDelta(t, 25.0, a.X, 1e-9)
	require.InDelta(t, 30.0, a.Y, 1e-9)
}

func TestUpdateFromUserFrame_UnknownIDIsNoOp(t *testing.T) {
	s := newLetterStore()
	x := 1.0
	s.UpdateFromUserFrame("nope", &x, nil) // must not panic
	require.Equal(t, 0, s.Len())
}

func TestRemove(t *testing.T) {
	s := newLetterStore()
	a := s.Add(1, 100, 700)

	require.True(t, s.Remove(a.ID))
	require.Equal(t, 0, s.Len())
	_, ok := s.Get(a.ID)
	require.False(t, ok)

	require.False(t, s.Remove(a.ID))
}

func TestOrdered_ReadingOrder(t *testing.T) {
	s := newLetterStore()

	// Two points within the 2pt row tolerance plus one clearly lower.
	first := s.Add(1, 50, 700)
	second := s.Add(1, 10, 700.5)
	third := s.Add(1, 5, 650)

	got := s.Ordered()
	require.Len(t, got, 3)
	// Same row: x ascending wins over the 0.5pt Y difference.
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, first.ID, got[1].ID)
	require.Equal(t, third.ID, got[2].ID)
}

func TestOrdered_PagesAscending(t *testing.T) {
	s := newLetterStore()
	s.SetPageDimensions(2, letter)

	p2 := s.Add(2, 10, 780)
	p1 := s.Add(1, 10, 10)

	got := s.Ordered()
	require.Equal(t, p1.ID, got[0].ID)
	require.Equal(t, p2.ID, got[1].ID)
}

func TestDisplayCacheInvariant(t *testing.T) {
	s := newLetterStore()
	s.SetOrigin(OriginTopLeft)
	a := s.Add(1, 100, 700)

	check := func() {
		require.InDelta(t, a.X, a.DisplayX, 1e-9)
		require.InDelta(t, letter.Height-a.Y, a.DisplayY, 1e-9)
	}
	check()

	s.UpdateFromDrag(a.ID, 200, 300)
	check()

	y := 10.0
	s.UpdateFromUserFrame(a.ID, nil, &y)
	check()
}
