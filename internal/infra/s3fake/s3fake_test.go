//go:build !integration

package s3fake

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(s *Server, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestObjectLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := New("posters")

	assert.Equal(t, http.StatusOK, do(s, http.MethodHead, "/posters", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodHead, "/other", "", nil).Code)

	rec := do(s, http.MethodPut, "/posters/movie_posters/1/a.jpg", "jpeg bytes", map[string]string{"Content-Type": "image/jpeg"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, s.Len())

	rec = do(s, http.MethodGet, "/posters/movie_posters/1/a.jpg", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg bytes", rec.Body.String())
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNoContent, do(s, http.MethodDelete, "/posters/movie_posters/1/a.jpg", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/posters/movie_posters/1/a.jpg", "", nil).Code)
	assert.Equal(t, 0, s.Len())
}

func TestPutDecodesAWSChunked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := New("posters")

	body := "5;chunk-signature=abc\r\nhello\r\n6\r\n world\r\n0\r\nx-amz-checksum-crc32:AAAAAA==\r\n\r\n"
	rec := do(s, http.MethodPut, "/posters/a.txt", body, map[string]string{"Content-Encoding": "aws-chunked"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodGet, "/posters/a.txt", "", nil)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestDecodeChunkedRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"zz\r\nabc", "5\r\nab", "3\r\nabcX"} {
		_, err := decodeChunked([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformedChunk, raw)
	}
}
