package utils

import (
	"net/http"
	"strconv"

	"safeclinic-web/internal/pkg/dto/requests"
	"safeclinic-web/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst, rejecting unknown
// fields so typos surface as 400s instead of silently dropped data.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("pageSize")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildAppointmentFilterRequest(r *http.Request) *requests.AppointmentFilter {
	return &requests.AppointmentFilter{
		Status: r.URL.Query().Get("status"),
		Date:   r.URL.Query().Get("date"),
	}
}
