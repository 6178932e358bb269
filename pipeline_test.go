package img2src

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJobs(t *testing.T, n int) []Job {
	t.Helper()

	dir := t.TempDir()
	jobs := make([]Job, 0, n)
	for i := 0; i < n; i++ {
		file := filepath.Join(dir, fmt.Sprintf("image%d.png", i))
		writePNG(t, file, solid(i+1, 1, color.White))

		o := DefaultOptions()
		o.Mode = MonoHorizontal
		o.VariableName = DefaultVariableName(file)
		jobs = append(jobs, Job{File: file, Options: o})
	}
	return jobs
}

func TestConvertFilesOrder(t *testing.T) {
	jobs := testJobs(t, 12)

	var names []string
	err := New(nil, nil).ConvertFiles(context.Background(), jobs, 4, func(job Job, f *Fragment) error {
		names = append(names, f.VariableName)
		assert.Equal(t, 8*((len(names)+7)/8), f.Width)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, names, len(jobs))
	for i, job := range jobs {
		assert.Equal(t, job.Options.VariableName, names[i])
	}
}

func TestConvertFilesToOneFile(t *testing.T) {
	jobs := testJobs(t, 3)
	out := filepath.Join(t.TempDir(), "images.c")

	err := New(nil, nil).ConvertFiles(context.Background(), jobs, 2, func(job Job, f *Fragment) error {
		return WriteFile(out, f, true)
	})
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(b)
	assert.Equal(t, 3, strings.Count(s, "};\n\n"))
	assert.True(t, strings.Index(s, "image0[]") < strings.Index(s, "image1[]"))
	assert.True(t, strings.Index(s, "image1[]") < strings.Index(s, "image2[]"))
}

func TestConvertFilesResize(t *testing.T) {
	jobs := testJobs(t, 1)
	jobs[0].Width, jobs[0].Height = 4, 4
	jobs[0].Options.Mode = RGB565

	err := New(nil, nil).ConvertFiles(context.Background(), jobs, 1, func(job Job, f *Fragment) error {
		assert.Equal(t, 4, f.Width)
		assert.Equal(t, 4, f.Height)
		assert.Equal(t, 32, f.Elements)
		return nil
	})
	require.NoError(t, err)
}

func TestConvertFilesMissing(t *testing.T) {
	jobs := testJobs(t, 3)
	jobs[1].File = filepath.Join(t.TempDir(), "missing.png")

	var called []string
	err := New(nil, nil).ConvertFiles(context.Background(), jobs, 1, func(job Job, f *Fragment) error {
		called = append(called, f.VariableName)
		return nil
	})
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, called, "image1")
	assert.NotContains(t, called, "image2")
}

func TestConvertFilesCallbackError(t *testing.T) {
	jobs := testJobs(t, 8)
	stop := errors.New("stop")

	calls := 0
	err := New(nil, nil).ConvertFiles(context.Background(), jobs, 3, func(job Job, f *Fragment) error {
		calls++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, calls)
}

func TestConvertFilesCancelled(t *testing.T) {
	jobs := testJobs(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(nil, nil).ConvertFiles(ctx, jobs, 1, func(job Job, f *Fragment) error {
		return nil
	})
	assert.Equal(t, context.Canceled, err)
}
