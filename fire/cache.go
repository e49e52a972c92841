package fire

// SumCache holds (a+b)>>2 for every pair of indices, so the four-neighbour
// average becomes two lookups: cache[a][b] + cache[c][d]. The result may be
// one below floor((a+b+c+d)/4); that drift is part of the look of the effect.
type SumCache [256][256]uint8

var sumCache = newSumCache()

func newSumCache() *SumCache {
	c := new(SumCache)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c[a][b] = uint8((a + b) >> 2)
		}
	}
	return c
}

// Cache returns the shared table.
func Cache() *SumCache { return sumCache }

// Average combines two pairs through the table.
func (c *SumCache) Average(a, b, d, e uint8) uint8 {
	return c[a][b] + c[d][e]
}

// ExactAverage is floor((a+b+c+d)/4).
func ExactAverage(a, b, c, d uint8) uint8 {
	return uint8((int(a) + int(b) + int(c) + int(d)) >> 2)
}
