package entities

// Page is a cursor-paginated result. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T
	NextCursor string
}
