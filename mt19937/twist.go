package mt19937

// twist regenerates the state array in place.
//
// The pass runs forward over a single array. From i = N-M on, the word at
// i+M has already been replaced during this pass, and the last step reads
// the new state[0]. Both reads must see the updated words.
func (g *Generator) twist() {
	for i := 0; i < N; i++ {
		x := g.state[i]&upperMask + g.state[(i+1)%N]&lowerMask
		xA := x >> 1
		if x&1 != 0 {
			xA ^= matrixA
		}
		g.state[i] = g.state[(i+M)%N] ^ xA
	}
	g.index = 0
}
