package listutils

// Chunk splits the given slice into consecutive chunks of at most chunkSize
// elements. A chunkSize lower than one returns nil.
func Chunk[T any](items []T, chunkSize int) [][]T {
	if chunkSize < 1 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+chunkSize-1)/chunkSize)
	for i := 0; i < len(items); i += chunkSize {
		end := i + chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}

// Unique returns the distinct elements of the given slice preserving their
// first-seen order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Flatten concatenates the given nested slices into a single slice.
func Flatten[T any](nested [][]T) []T {
	size := 0
	for _, inner := range nested {
		size += len(inner)
	}
	result := make([]T, 0, size)
	for _, inner := range nested {
		result = append(result, inner...)
	}
	return result
}
