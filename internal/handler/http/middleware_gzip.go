package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// xlsx workbooks are zip containers already, so the contact export goes
// out as-is instead of being wrapped in a second round of deflate.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	gzWriters = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzReaders = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that advertise gzip support.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gz := gzWriters.Get().(*gzip.Writer)
		gz.Reset(w)

		cw := &compressingWriter{ResponseWriter: w, gz: gz}
		next.ServeHTTP(cw, req)

		if cw.wroteHeader && !cw.skipped {
			gz.Close()
		}
		gzWriters.Put(gz)
	})
}

// inflateRequestBody swaps the request body for an inflating reader. On
// malformed gzip input it answers 400 and reports false so the caller
// stops the chain.
func inflateRequestBody(w http.ResponseWriter, req *http.Request) bool {
	gz := gzReaders.Get().(*gzip.Reader)
	if err := gz.Reset(req.Body); err != nil {
		gzReaders.Put(gz)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &inflatedBody{
		Reader: gz,
		release: func() {
			gz.Close()
			gzReaders.Put(gz)
		},
	}
	req.Header.Del("Content-Encoding")

	return true
}

type inflatedBody struct {
	io.Reader
	release func()
}

func (b *inflatedBody) Close() error {
	if b.release != nil {
		b.release()
		b.release = nil
	}
	return nil
}

// compressingWriter defers the compress-or-not decision to the first
// header write so already compressed payloads stay untouched.
type compressingWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	skipped     bool
	wroteHeader bool
}

func (w *compressingWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		if w.Header().Get("Content-Type") == xlsxContentType {
			w.skipped = true
		} else {
			w.Header().Set("Content-Encoding", "gzip")
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressingWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.skipped {
		return w.ResponseWriter.Write(data)
	}
	return w.gz.Write(data)
}
