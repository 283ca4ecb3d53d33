package dto

// Pagination is the skip/limit window accepted by every listing endpoint.
type Pagination struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

type PaginationMetadata struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}

func NewPaginationResponse(page Pagination, count int, records interface{}) PaginationResponse {
	return PaginationResponse{
		Metadata: PaginationMetadata{
			Skip:  page.Skip,
			Limit: page.Limit,
			Count: count,
		},
		Records: records,
	}
}
