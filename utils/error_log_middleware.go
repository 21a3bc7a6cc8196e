package utils

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// maxLoggedBody caps how much of a failed response body ends up in the log.
const maxLoggedBody = 512

// failedBodyWriter keeps the first maxLoggedBody bytes written while the
// response status is >= 400 and counts the rest.
type failedBodyWriter struct {
	gin.ResponseWriter
	head    bytes.Buffer
	dropped int
}

func (w *failedBodyWriter) Write(b []byte) (int, error) {
	if w.Status() >= 400 {
		room := maxLoggedBody - w.head.Len()
		if room > len(b) {
			room = len(b)
		}
		if room > 0 {
			w.head.Write(b[:room])
		}
		w.dropped += len(b) - room
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs one line per response with status >= 400:
// method, path, status and the body cut to maxLoggedBody bytes, with a
// count of the bytes left out. Bodies are seen before compression, so it
// must be registered after gzip to log readable text.
func ErrorLogMiddleware(c *gin.Context) {
	w := &failedBodyWriter{ResponseWriter: c.Writer}
	c.Writer = w
	c.Next()

	if w.Status() < 400 {
		return
	}
	if w.dropped > 0 {
		log.Printf("[DEBUG ERROR]: %s %s, Status %d, Body: %s... (%d more bytes)", c.Request.Method, c.Request.URL.Path, w.Status(), w.head.String(), w.dropped)
		return
	}
	log.Printf("[DEBUG ERROR]: %s %s, Status %d, Body: %s", c.Request.Method, c.Request.URL.Path, w.Status(), w.head.String())
}
