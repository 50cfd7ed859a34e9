package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ResponseInterceptor records the status code written by a handler and, for
// non-2xx responses, buffers the body so the middleware can log the error
// message the client saw.
type ResponseInterceptor struct {
	writer http.ResponseWriter
	Status int
	Body   []byte
}

func NewResponseInterceptor(w http.ResponseWriter) *ResponseInterceptor {
	return &ResponseInterceptor{writer: w}
}

func (r *ResponseInterceptor) WriteHeader(status int) {
	r.Status = status
	r.writer.WriteHeader(status)
}

func (r *ResponseInterceptor) Write(b []byte) (int, error) {
	if r.Status/100 != 2 {
		r.Body = append(r.Body, b...)
	}
	return r.writer.Write(b)
}

func (r *ResponseInterceptor) Header() http.Header {
	return r.writer.Header()
}

func (r *ResponseInterceptor) Returned() string {
	if len(r.Body) > 0 {
		return fmt.Sprintf("%d %s", r.Status, string(r.Body))
	}

	return fmt.Sprintf("%d", r.Status)
}

func (r *ResponseInterceptor) IsSystemError() bool {
	return r.Status/100 == 5
}

// Log is the request logging middleware for the admin API. Failures surface
// at error level with the response body included; everything else stays at
// debug so routine catalog polling does not flood the log.
func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		interceptor := NewResponseInterceptor(w)
		w = interceptor
		started := time.Now()
		logrus.Debugf("Request %s %s started.", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		elapsed := time.Since(started)
		if interceptor.IsSystemError() {
			logrus.Errorf("Request %s %s returned %s in %s", r.Method, r.URL.Path, interceptor.Returned(), elapsed)
		} else {
			logrus.Debugf("Request %s %s returned %s in %s", r.Method, r.URL.Path, interceptor.Returned(), elapsed)
		}
	})
}
