package dto

import (
	"net/url"
	"strconv"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/pkg/validator"
)

const defaultPageSize = 100

// PageFromQuery reads page and page_size. ok is false when neither is given,
// which means the whole listing.
func PageFromQuery(q url.Values, v *validator.Validator) (p models.Page, ok bool) {
	if !q.Has("page") && !q.Has("page_size") {
		return models.Page{}, false
	}

	p = models.Page{
		Page:     readInt(q, "page", 1, v),
		PageSize: readInt(q, "page_size", defaultPageSize, v),
	}
	p.Validate(v)
	return p, true
}

func readInt(q url.Values, key string, def int, v *validator.Validator) int {
	s := q.Get(key)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		v.AddError(key, "must be an integer value")
		return def
	}
	return i
}
