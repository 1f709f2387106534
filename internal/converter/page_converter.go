package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/pkg/listquery"
)

// ToPage maps the items of an evaluated list query with fn.
func ToPage[E any, D any](res listquery.Result[E], fn func(*E) *D) *dto.PageResponse[D] {
	items := make([]D, len(res.Items))
	for i := range res.Items {
		items[i] = *fn(&res.Items[i])
	}
	return &dto.PageResponse[D]{
		Items:      items,
		Page:       res.Page,
		Limit:      res.PageSize,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}
}

// ToSlice maps every element of models with fn.
func ToSlice[E any, D any](models []E, fn func(*E) *D) []D {
	out := make([]D, len(models))
	for i := range models {
		out[i] = *fn(&models[i])
	}
	return out
}
