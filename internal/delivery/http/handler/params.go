package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v3"
)

// careerParam unescapes the :career path segment; career names carry
// spaces ("Data Engineer") and arrive percent-encoded.
func careerParam(c fiber.Ctx) string {
	raw := c.Params("career")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
