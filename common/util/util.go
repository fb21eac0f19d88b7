package util

// Convert maps a slice through f.
func Convert[S any, T any](source []S, f func(s S) T) []T {
	result := make([]T, len(source))
	for i, s := range source {
		result[i] = f(s)
	}
	return result
}

// Dedupe keeps the first occurrence of each item, preserving order.
func Dedupe[T comparable](items []T) []T {
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
