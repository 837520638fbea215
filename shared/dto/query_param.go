package dto

import (
	"net/http"
	"strconv"

	"studio/shared/constant"
	"studio/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams orders by SortBy, breaking ties on the primary key in TieDir, or in
// SortDir when TieDir is empty.
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	TieDir  string `json:"-"        validate:"omitempty,oneof=ASC DESC"`
}

// Newest orders by column descending, capped at limit rows.
func Newest(column string, limit int) QueryParams {
	return QueryParams{
		Limit:   limit,
		SortBy:  column,
		SortDir: SortDirDesc,
	}
}

// LimitFromRequest reads the `limit` query parameter. A missing value yields maxLimit;
// values outside 1..maxLimit are rejected.
func LimitFromRequest(r *http.Request, maxLimit int) (int, error) {
	raw := r.URL.Query().Get(constant.RequestParamLimit)
	if raw == "" {
		return maxLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxLimit {
		return 0, failure.InvalidLimitParam
	}

	return limit, nil
}
