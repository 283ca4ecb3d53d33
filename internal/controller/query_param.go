package controller

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
)

type pageLimits struct {
	defaultLimit int
	maxLimit     int
}

var (
	productPageLimits        = pageLimits{defaultLimit: 20, maxLimit: 100}
	reviewPageLimits         = pageLimits{defaultLimit: 10, maxLimit: 50}
	featuredReviewPageLimits = pageLimits{defaultLimit: 3, maxLimit: 10}
	productReviewPageLimits  = pageLimits{defaultLimit: 20, maxLimit: 50}
	contactPageLimits        = pageLimits{defaultLimit: 50, maxLimit: 100}
)

// bindPagination reads skip and limit from the query string. The returned map
// is non-nil when a bound is violated and lists the offending parameters.
func bindPagination(e echo.Context, limits pageLimits) (pkgdto.Pagination, map[string]string) {
	page := pkgdto.Pagination{Skip: 0, Limit: limits.defaultLimit}
	fields := map[string]string{}

	if raw := e.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			fields["skip"] = "must be an integer"
		} else if skip < 0 {
			fields["skip"] = "must be greater than or equal to 0"
		} else {
			page.Skip = skip
		}
	}

	limit, limitFields := bindLimit(e, limits)
	page.Limit = limit
	for k, v := range limitFields {
		fields[k] = v
	}

	if len(fields) > 0 {
		return page, fields
	}
	return page, nil
}

// bindLimit reads only limit, for listings that have no offset. A skip
// parameter on those routes is ignored rather than validated.
func bindLimit(e echo.Context, limits pageLimits) (int, map[string]string) {
	raw := e.QueryParam("limit")
	if raw == "" {
		return limits.defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return limits.defaultLimit, map[string]string{"limit": "must be an integer"}
	}
	if limit < 1 || limit > limits.maxLimit {
		return limits.defaultLimit, map[string]string{"limit": fmt.Sprintf("must be between 1 and %d", limits.maxLimit)}
	}
	return limit, nil
}

// optionalBool parses a boolean query parameter. An absent or empty value
// yields nil.
func optionalBool(e echo.Context, name string) (*bool, error) {
	raw := e.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(e echo.Context, name string) *string {
	raw := e.QueryParam(name)
	if raw == "" {
		return nil
	}
	return &raw
}
