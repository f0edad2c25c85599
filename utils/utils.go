package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Pagination reads the page and limit query parameters, falling back to the
// API defaults of page 1 and 10 items.
func Pagination(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	offset = (page - 1) * limit
	return page, limit, offset
}
