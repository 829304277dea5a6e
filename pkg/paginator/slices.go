package paginator

// PaginateSlice applies pagination to a slice of any type.
// It returns the items for the requested page plus pagination metadata.
func PaginateSlice[T any](slice []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()

	total := int64(len(slice))

	startIndex := query.Offset()
	endIndex := startIndex + query.Limit
	if endIndex > total {
		endIndex = total
	}

	if startIndex >= total {
		return []T{}, Paginator{
			Total:       total,
			Count:       0,
			PerPage:     query.Limit,
			CurrentPage: query.Page,
		}
	}

	pageItems := slice[startIndex:endIndex]

	return pageItems, Paginator{
		Total:       total,
		Count:       int64(len(pageItems)),
		PerPage:     query.Limit,
		CurrentPage: query.Page,
	}
}
