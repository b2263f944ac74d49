package core

// Map projects a slice through m. The result is never nil, even for an
// empty source.
func Map[TSource any, TResult any](source []TSource, m func(TSource) TResult) []TResult {
	results := make([]TResult, 0, len(source))
	for _, s := range source {
		results = append(results, m(s))
	}
	return results
}
