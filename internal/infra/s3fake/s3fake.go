// Package s3fake is an in-memory server for the subset of the S3 API the
// poster storage uses. It backs S3_CLIENT_TYPE=mock in local setups.
package s3fake

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

var ErrMalformedChunk = errors.New("malformed aws-chunked body")

type object struct {
	content     []byte
	contentType string
}

type Server struct {
	bucket string

	mu      sync.RWMutex
	objects map[string]object

	engine *gin.Engine
	logger *slog.Logger
}

func New(bucket string) *Server {
	s := &Server{
		bucket:  bucket,
		objects: make(map[string]object),
		engine:  gin.New(),
		logger:  slog.Default(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.HEAD("/:bucket", s.headBucket)
	s.engine.HEAD("/:bucket/*key", s.headObject)
	s.engine.GET("/:bucket/*key", s.getObject)
	s.engine.PUT("/:bucket/*key", s.putObject)
	s.engine.DELETE("/:bucket/*key", s.deleteObject)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Len is the number of stored objects.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *Server) knownBucket(ctx *gin.Context) bool {
	if ctx.Param("bucket") != s.bucket {
		ctx.Status(http.StatusNotFound)
		return false
	}
	return true
}

func objectKey(ctx *gin.Context) string {
	return strings.TrimPrefix(ctx.Param("key"), "/")
}

func (s *Server) headBucket(ctx *gin.Context) {
	if !s.knownBucket(ctx) {
		return
	}
	ctx.Status(http.StatusOK)
}

func (s *Server) headObject(ctx *gin.Context) {
	if !s.knownBucket(ctx) {
		return
	}
	key := objectKey(ctx)
	if key == "" {
		ctx.Status(http.StatusOK)
		return
	}

	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.Header("Content-Length", strconv.Itoa(len(obj.content)))
	ctx.Header("Content-Type", obj.contentType)
	ctx.Status(http.StatusOK)
}

func (s *Server) getObject(ctx *gin.Context) {
	if !s.knownBucket(ctx) {
		return
	}

	s.mu.RLock()
	obj, ok := s.objects[objectKey(ctx)]
	s.mu.RUnlock()
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.Data(http.StatusOK, obj.contentType, obj.content)
}

func (s *Server) putObject(ctx *gin.Context) {
	if !s.knownBucket(ctx) {
		return
	}
	key := objectKey(ctx)
	if key == "" {
		ctx.Status(http.StatusBadRequest)
		return
	}

	content, err := readBody(ctx.Request)
	if err != nil {
		s.logger.Warn("rejecting upload", slog.String("key", key), slog.String("error", err.Error()))
		ctx.Status(http.StatusBadRequest)
		return
	}

	contentType := ctx.GetHeader("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	s.mu.Lock()
	s.objects[key] = object{content: content, contentType: contentType}
	s.mu.Unlock()

	s.logger.Info("object stored", slog.String("key", key), slog.Int("size", len(content)))
	ctx.Header("ETag", fmt.Sprintf("%q", strconv.Itoa(len(content))))
	ctx.Status(http.StatusOK)
}

func (s *Server) deleteObject(ctx *gin.Context) {
	if !s.knownBucket(ctx) {
		return
	}

	s.mu.Lock()
	delete(s.objects, objectKey(ctx))
	s.mu.Unlock()
	ctx.Status(http.StatusNoContent)
}

// readBody returns the payload of a PutObject request. SDK uploads with
// streaming checksums arrive aws-chunked encoded.
func readBody(r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(r.Header.Get("Content-Encoding"), "aws-chunked") {
		return raw, nil
	}
	return decodeChunked(raw)
}

// decodeChunked strips aws-chunked framing: "<hex size>[;ext]\r\n<data>\r\n"
// repeated until a zero sized chunk, then optional trailers.
func decodeChunked(raw []byte) ([]byte, error) {
	reader := bufio.NewReader(bytes.NewReader(raw))
	var out bytes.Buffer
	for {
		header, err := reader.ReadString('\n')
		if err != nil {
			return nil, ErrMalformedChunk
		}
		sizeHex, _, _ := strings.Cut(strings.TrimSpace(header), ";")
		size, err := strconv.ParseInt(sizeHex, 16, 64)
		if err != nil || size < 0 {
			return nil, ErrMalformedChunk
		}
		if size == 0 {
			return out.Bytes(), nil
		}

		if _, err := io.CopyN(&out, reader, size); err != nil {
			return nil, ErrMalformedChunk
		}
		if crlf, err := reader.ReadString('\n'); err != nil || strings.TrimSpace(crlf) != "" {
			return nil, ErrMalformedChunk
		}
	}
}
