package models

// Page is an offset/limit window over an already sorted result.
type Page struct {
	From int
	Size int
}
