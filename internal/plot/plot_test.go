package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/w2v-bench/internal/model"
)

func twoSeries() []Named {
	return []Named{
		{Name: "word2vec", Series: model.Series{Threads: []int{1, 2, 3}, Times: []float64{30, 16, 11}}},
		{Name: "yzw2v", Series: model.Series{Threads: []int{1, 2, 3}, Times: []float64{20, 10.5, 7.25}}},
	}
}

func TestBuildAxes(t *testing.T) {
	p, err := Build("text8", twoSeries()...)
	require.NoError(t, err)

	assert.Equal(t, "text8", p.Title.Text)
	assert.Equal(t, "training time (sec.)", p.X.Label.Text)
	assert.Equal(t, "thread count", p.Y.Label.Text)
	assert.True(t, p.Legend.Top)
	assert.False(t, p.Legend.Left)

	// times on x, thread counts on y
	assert.Equal(t, 7.25, p.X.Min)
	assert.Equal(t, 30.0, p.X.Max)
	assert.Equal(t, 1.0, p.Y.Min)
	assert.Equal(t, 3.0, p.Y.Max)
}

func TestBuildRejects(t *testing.T) {
	_, err := Build("")
	assert.Error(t, err)

	_, err = Build("", Named{Name: "broken", Series: model.Series{Threads: []int{1, 2}, Times: []float64{1}}})
	assert.Error(t, err)
}

func TestRenderFormats(t *testing.T) {
	for _, name := range []string{"threads.png", "threads.svg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, Render(path, "", Options{}, twoSeries()...))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threads.bmp")
	assert.Error(t, Render(path, "title", Options{Width: 3, Height: 2}, twoSeries()...))
}
