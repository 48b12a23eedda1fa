package response

import "equine_billing/internal/domain/entities"

type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func FromPage[E, T any](p entities.Page[E], conv func(E) T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, e := range p.Items {
		items = append(items, conv(e))
	}
	return PageResponse[T]{Items: items, NextCursor: p.NextCursor}
}

type ListenerResponse struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

func FromListeners(ls []entities.ListenerUser) []ListenerResponse {
	out := make([]ListenerResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, ListenerResponse{UserID: l.UserID, UserType: string(l.UserType)})
	}
	return out
}
