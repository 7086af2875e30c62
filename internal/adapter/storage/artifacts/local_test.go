package artifacts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_WriteRead(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	path, err := store.Write("receipt-1", "evidence.zip", []byte("archive"))
	require.NoError(t, err)
	assert.Equal(t, "receipt-1", filepath.Base(filepath.Dir(path)))

	data, err := store.Read("receipt-1", "evidence.zip")
	require.NoError(t, err)
	assert.Equal(t, []byte("archive"), data)
}

func TestLocalStore_ReadMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Read("receipt-1", "missing.zip")
	assert.Error(t, err)
}

func TestLocalStore_OverwriteReplaces(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Write("r", "f", []byte("one"))
	require.NoError(t, err)
	_, err = store.Write("r", "f", []byte("two"))
	require.NoError(t, err)

	data, err := store.Read("r", "f")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestNoopUploader(t *testing.T) {
	id, err := NoopUploader{}.Upload(context.Background(), "/tmp/x.zip")
	require.NoError(t, err)
	assert.Empty(t, id)
}
