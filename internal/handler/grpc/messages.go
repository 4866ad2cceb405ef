package grpc

import "github.com/MKhiriev/go-wine-cellar/models"

// GetWineRequest addresses one wine by its UUID string.
type GetWineRequest struct {
	ID string `json:"id"`
}

// ListWinesRequest mirrors the query parameters of the HTTP listing. Absent
// paging fields take the listing defaults; present ones are used as sent.
type ListWinesRequest struct {
	Criteria  *models.SearchCriteria `json:"criteria,omitempty"`
	PageNo    *int                   `json:"page_no,omitempty"`
	PageSize  *int                   `json:"page_size,omitempty"`
	SortBy    string                 `json:"sort_by,omitempty"`
	SortOrder string                 `json:"sort_order,omitempty"`
}

type CreateWineRequest struct {
	Wine models.CreateWineRequest `json:"wine"`
}

type UpdateWineRequest struct {
	ID     string            `json:"id"`
	Update models.WineUpdate `json:"update"`
}

type DeleteWineRequest struct {
	ID string `json:"id"`
}

// DeleteWineResponse reports how many records were removed.
type DeleteWineResponse struct {
	Deleted int64 `json:"deleted"`
}

// PageRequest converts the paging fields into a page request, starting from
// the first page of defaultPageSize sorted by name.
func (r *ListWinesRequest) PageRequest(defaultPageSize int) (models.PageRequest, error) {
	pageRequest := models.NewPageRequest(defaultPageSize)
	if r.PageNo != nil {
		pageRequest.Page = *r.PageNo
	}
	if r.PageSize != nil {
		pageRequest.Size = *r.PageSize
	}
	if r.SortBy != "" {
		pageRequest.Sort.Field = r.SortBy
	}
	if r.SortOrder != "" {
		direction, err := models.ParseSortDirection(r.SortOrder)
		if err != nil {
			return pageRequest, err
		}
		pageRequest.Sort.Direction = direction
	}
	return pageRequest, nil
}
