package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging membaca ?page= & ?limit= dan normalisasi.
// - defaultLimit: fallback kalau tidak ada/invalid
// - maxLimit: batasi limit maksimum (0 = tanpa batas)
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))
	limitStr := strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit)))

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

/* ===============================
   Paginated payload {data,total,page,limit,totalPages}
=================================*/

type PaginatedData struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

func BuildPaginatedData(data interface{}, total int64, p Paging) PaginatedData {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit)) // ceil
	return PaginatedData{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
