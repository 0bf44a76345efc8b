package seed

// Value sums the code points of s. It only needs to be stable; collisions
// just make two tools share a template variant.
func Value(s string) int {
	n := 0
	for _, r := range s {
		n += int(r)
	}
	return n
}

// Pick returns list[(seed+offset) mod len(list)]. list must not be empty.
func Pick[T any](list []T, seed, offset int) T {
	return list[(seed+offset)%len(list)]
}
