package cipher

// OpKind identifies one of the primitive array transforms observed in
// player.js transform objects.
type OpKind int

const (
	OpReverse OpKind = iota
	OpSplice
	OpSwap
)

var opKindNames = map[OpKind]string{
	OpReverse: "reverse",
	OpSplice:  "splice",
	OpSwap:    "swap",
}

func (k OpKind) String() string {
	if name, ok := opKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Operation is a single transform step. N is the integer literal captured at
// the call site; it is unused for OpReverse. Bounds are applied only when the
// operation runs, since the signature length is unknown until then.
type Operation struct {
	Kind OpKind
	N    int
}

func reverseRunes(a []rune) []rune {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
	return a
}

// spliceRunes drops the first n elements, clamped to the array length.
func spliceRunes(a []rune, n int) []rune {
	if n < 0 {
		return a
	}
	if n > len(a) {
		n = len(a)
	}
	return a[n:]
}

// swapRunes exchanges element 0 with element n%len. Arrays shorter than two
// elements are left untouched.
func swapRunes(a []rune, n int) []rune {
	if len(a) <= 1 {
		return a
	}
	n = n % len(a)
	a[0], a[n] = a[n], a[0]
	return a
}
