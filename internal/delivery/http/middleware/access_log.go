package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CtxRequestIDKey is where the request id lands in the fiber context, so
// handlers can correlate their own log lines with the access line.
const CtxRequestIDKey = "request_id"

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware tags every request with an id, echoes it back in the
// X-Request-ID header and logs one line per request once the handler
// chain returns.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(CtxRequestIDKey, rid)
		c.Set("X-Request-ID", rid)

		err := c.Next()

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] %s %s status=%d dur=%s rid=%s ip=%s bytes=%d",
				c.Method(),
				c.OriginalURL(),
				c.Response().StatusCode(),
				time.Since(start).Round(time.Microsecond),
				rid,
				c.IP(),
				c.Response().Header.ContentLength(),
			)
		}
		return err
	}
}
