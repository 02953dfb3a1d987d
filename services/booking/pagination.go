package booking

import (
	"strconv"

	"shareit/models"
)

// NewPage validates offset/limit parameters.
func NewPage(from, size int) (models.Page, error) {
	if from < 0 || size <= 0 {
		return models.Page{}, NewInvalidPage(strconv.Itoa(from), strconv.Itoa(size))
	}
	return models.Page{From: from, Size: size}, nil
}

// Paginate cuts the page out of an already sorted slice. The window starts at
// the beginning of the page that contains offset From, so from=5,size=10
// returns the first ten entries.
func Paginate[T any](all []T, page models.Page) []T {
	if page.Size <= 0 {
		return all
	}
	lo := (page.From / page.Size) * page.Size
	if lo >= len(all) {
		return []T{}
	}
	hi := min(lo+page.Size, len(all))
	return all[lo:hi]
}
