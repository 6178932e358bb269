package img2src

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.c")

	a := &Fragment{VariableType: "uint8_t", VariableName: "a", Body: "0x01\n"}
	b := &Fragment{VariableType: "uint8_t", VariableName: "b", Body: "0x02\n"}

	require.NoError(t, WriteFile(file, a, true))
	require.NoError(t, WriteFile(file, b, true))

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, a.String()+b.String(), string(got))

	require.NoError(t, WriteFile(file, b, false))
	got, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, b.String(), string(got))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.c"), &Fragment{}, false)
	assert.Error(t, err)
}
