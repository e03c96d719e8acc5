package day07

// Plans returns every distinct arrangement of a plan containing exactly
// plus Increase, minus Decrease and equal Maintain instructions, in
// lexicographic order of (+, -, =).
func Plans(plus, minus, equal int) [][]Instruction {
	var out [][]Instruction
	cur := make([]Instruction, 0, plus+minus+equal)

	var rec func(p, m, e int)
	rec = func(p, m, e int) {
		if p == 0 && m == 0 && e == 0 {
			out = append(out, append([]Instruction(nil), cur...))
			return
		}
		for _, choice := range []struct {
			ins  Instruction
			left *int
		}{{Increase, &p}, {Decrease, &m}, {Maintain, &e}} {
			if *choice.left == 0 {
				continue
			}
			*choice.left--
			cur = append(cur, choice.ins)
			rec(p, m, e)
			cur = cur[:len(cur)-1]
			*choice.left++
		}
	}
	rec(plus, minus, equal)

	return out
}
