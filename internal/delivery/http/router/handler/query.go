package handler

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
)

// reservedParams are query keys with dedicated meaning; everything else is
// treated as a field filter.
var reservedParams = map[string]struct{}{
	"page":    {},
	"limit":   {},
	"sort":    {},
	"fields":  {},
	"keyword": {},
}

// filterOps maps the bracketed operator suffix of a query key to the
// repository operator. A key without a suffix is an equality filter.
var filterOps = map[string]repository.FilterOp{
	"eq":  repository.OpEq,
	"ne":  repository.OpNe,
	"gt":  repository.OpGt,
	"gte": repository.OpGte,
	"lt":  repository.OpLt,
	"lte": repository.OpLte,
}

// bindListQuery builds a collection read from the request's query string.
// Filters use the field[op]=value convention (price[gte]=100); unknown
// operators are dropped, and the repository layer drops fields outside the
// resource's allowlist.
func bindListQuery(c echo.Context) *repository.ListQuery {
	q := &repository.ListQuery{
		Keyword: c.QueryParam("keyword"),
		Sort:    repository.ParseSortKeys(c.QueryParam("sort")),
		Fields:  repository.ParseFields(c.QueryParam("fields")),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		q.Limit = limit
	}

	for key, values := range c.QueryParams() {
		if len(values) == 0 {
			continue
		}
		if _, reserved := reservedParams[key]; reserved {
			continue
		}

		field, op := splitFilterKey(key)
		if op == "" {
			continue
		}

		q.Filters = append(q.Filters, repository.Filter{
			Field: field,
			Op:    repository.FilterOp(op),
			Value: values[0],
		})
	}

	q.Normalize()

	return q
}

// splitFilterKey decomposes "price[gte]" into ("price", "gte"). A bare key
// is an equality filter; an unknown operator yields an empty op so the
// filter is dropped.
func splitFilterKey(key string) (field, op string) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, string(repository.OpEq)
	}

	if !strings.HasSuffix(key, "]") {
		return key, ""
	}

	field = key[:open]
	raw := key[open+1 : len(key)-1]
	if mapped, ok := filterOps[raw]; ok {
		return field, string(mapped)
	}

	return field, ""
}

// pathID parses the :id path parameter, rejecting malformed ids before
// they reach the persistence layer.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}
