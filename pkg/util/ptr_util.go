package util

func Ptr[V any](s V) *V {
	return &s
}
