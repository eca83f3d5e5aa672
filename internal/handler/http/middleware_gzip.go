package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for clients
// that accept gzip. Compression starts lazily on the first body write, so
// empty responses such as 204 or 304 go out untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasToken(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil && r.Body != http.NoBody {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "malformed gzip body", http.StatusBadRequest)
				return
			}
			r.Body = &pooledReader{Reader: zr, release: func() {
				_ = zr.Close()
				gzipReaders.Put(zr)
			}}
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !hasToken(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		cw := &compressWriter{ResponseWriter: w}
		defer cw.finish()
		next.ServeHTTP(cw, r)
	})
}

func hasToken(header, token string) bool {
	for part := range strings.SplitSeq(header, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(name, token) {
			return true
		}
	}
	return false
}

// pooledReader returns its gzip reader to the pool on Close.
type pooledReader struct {
	io.Reader
	release func()
}

func (p *pooledReader) Close() error {
	if p.release != nil {
		p.release()
		p.release = nil
	}
	return nil
}

// compressWriter switches to gzip on the first non-empty Write.
type compressWriter struct {
	http.ResponseWriter

	zw          *gzip.Writer
	status      int
	wroteHeader bool
}

func (c *compressWriter) WriteHeader(status int) {
	if c.wroteHeader || c.status != 0 {
		return
	}
	c.status = status
}

func (c *compressWriter) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if c.zw == nil && !c.wroteHeader {
		h := c.Header()
		if h.Get("Content-Encoding") == "" {
			h.Set("Content-Encoding", "gzip")
			h.Del("Content-Length")
			c.zw = gzipWriters.Get().(*gzip.Writer)
			c.zw.Reset(c.ResponseWriter)
		}
		c.flushHeader()
	}
	if c.zw == nil {
		return c.ResponseWriter.Write(b)
	}
	return c.zw.Write(b)
}

func (c *compressWriter) flushHeader() {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.ResponseWriter.WriteHeader(c.status)
}

// finish closes the gzip stream, or sends a deferred header for a response
// that never wrote a body.
func (c *compressWriter) finish() {
	if c.zw == nil {
		if c.status != 0 {
			c.flushHeader()
		}
		return
	}
	_ = c.zw.Close()
	gzipWriters.Put(c.zw)
	c.zw = nil
}
