package server

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainListener_Listen(t *testing.T) {
	l := NewPlainListener()

	listener, err := l.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	assert.NotEmpty(t, listener.Addr().String())
}

func TestTLSListener_Listen_MissingCert(t *testing.T) {
	dir := t.TempDir()
	l := NewTLSListener(filepath.Join(dir, "missing.pem"), filepath.Join(dir, "missing-key.pem"))

	_, err := l.Listen("tcp", "127.0.0.1:0")
	require.Error(t, err)
}

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":3000")
	assert.Equal(t, ":3000", s.Address())
}
