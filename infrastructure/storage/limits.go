// ABOUTME: Shared retention limit configuration for archive backends
// ABOUTME: Each record type has its own independent retention budget

package storage

// Limits bounds how many records each archive backend retains.
// Oldest entries beyond a limit are silently evicted at write time.
type Limits struct {
	MaxArticles int
	MaxComics   int
}

// ClampArticles returns the index bound for an article list.
func (l Limits) ClampArticles(n int) int {
	if l.MaxArticles > 0 && n > l.MaxArticles {
		return l.MaxArticles
	}
	return n
}

// ClampComics returns the index bound for a comic list.
func (l Limits) ClampComics(n int) int {
	if l.MaxComics > 0 && n > l.MaxComics {
		return l.MaxComics
	}
	return n
}
