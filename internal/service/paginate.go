package service

// QuestionsPerPage is the page size of every paginated listing
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages before the first or past
// the end are empty.
func Paginate[T any](page int, items []T) []T {
	// Bound page before multiplying so huge values cannot wrap around.
	if page < 1 || page-1 >= (len(items)+QuestionsPerPage-1)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
