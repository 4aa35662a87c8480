package log2

// Undefined is returned for an input of 0, whose logarithm is negative infinity.
const Undefined = -1

// table[b] holds floor(log2(b)) for every byte value b.
var table = func() [256]int8 {
	var t [256]int8
	t[0] = Undefined
	for b := 1; b < 256; b++ {
		t[b] = t[b/2] + 1
	}
	return t
}()

// Floor returns floor(log2(x)), or Undefined when x is 0.
func Floor(x uint64) int {
	if hi := x >> 32; hi != 0 {
		return 32 + floor32(uint32(hi))
	}
	return floor32(uint32(x))
}

func floor32(x uint32) int {
	switch {
	case x>>24 != 0:
		return 24 + int(table[x>>24])
	case x>>16 != 0:
		return 16 + int(table[x>>16])
	case x>>8 != 0:
		return 8 + int(table[x>>8])
	default:
		return int(table[x])
	}
}
