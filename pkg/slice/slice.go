package slice

func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func Contains[T comparable](s []T, value T) bool {
	return IndexOf(s, value) >= 0
}

// Position of the first occurrence of value, -1 if absent
func IndexOf[T comparable](s []T, value T) int {
	for i, a := range s {
		if a == value {
			return i
		}
	}
	return -1
}

// Elements of s for which keep returns true, in order
func Filter[T any](s []T, keep func(T) bool) []T {
	filtered := make([]T, 0, len(s))
	for _, a := range s {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
