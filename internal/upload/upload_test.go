package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveReceipt(t *testing.T) {
	t.Run("stores the file under a unique name", func(t *testing.T) {
		dir := t.TempDir()

		path, err := SaveReceipt(dir, "nota.pdf", strings.NewReader("conteudo"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(filepath.Base(path), "comprovante_"))
		assert.Equal(t, ".pdf", filepath.Ext(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "conteudo", string(data))
	})

	t.Run("extension check is case insensitive", func(t *testing.T) {
		dir := t.TempDir()

		path, err := SaveReceipt(dir, "FOTO.JPG", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, ".jpg", filepath.Ext(path))
	})

	t.Run("rejects disallowed types", func(t *testing.T) {
		dir := t.TempDir()

		_, err := SaveReceipt(dir, "script.exe", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrDisallowedType)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("two uploads never collide", func(t *testing.T) {
		dir := t.TempDir()

		a, err := SaveReceipt(dir, "nota.png", strings.NewReader("a"))
		require.NoError(t, err)
		b, err := SaveReceipt(dir, "nota.png", strings.NewReader("b"))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})
}
