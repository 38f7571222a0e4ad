package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Page is a limit/offset window read from the size and index query params.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads ?size=&index=. Missing or invalid values fall back to the
// defaults and size is capped at MaxPageSize.
func ParsePage(c *fiber.Ctx) Page {
	p := Page{Limit: DefaultPageSize}
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if v, err := strconv.Atoi(c.Query("index")); err == nil && v > 0 {
		p.Offset = v
	}
	return p
}

// Paginated wraps a result page with its window and the total row count.
func Paginated(total int64, p Page, results interface{}) fiber.Map {
	return fiber.Map{
		"count":   total,
		"limit":   p.Limit,
		"offset":  p.Offset,
		"results": results,
	}
}
