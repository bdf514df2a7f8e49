package pdfpin_test

import (
	"testing"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/stretchr/testify/require"

	"github.com/example/pdfpin"
)

func TestReadPageDimensions(t *testing.T) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	require.NoError(t, err)
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	require.NoError(t, err)

	dims, err := pdfpin.ReadPageDimensions(instance, makeSourcePDF(t))
	require.NoError(t, err)
	require.Len(t, dims, len(letterPages))

	for i, d := range dims {
		require.InDelta(t, letterPages[i].Width, d.Width, 0.5, "page %d width", i+1)
		require.InDelta(t, letterPages[i].Height, d.Height, 0.5, "page %d height", i+1)
		require.True(t, d.Known())
	}
}

func TestReadPageDimensions_BadInput(t *testing.T) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	require.NoError(t, err)
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	require.NoError(t, err)

	_, err = pdfpin.ReadPageDimensions(instance, []byte("not a pdf"))
	require.Error(t, err)
}
