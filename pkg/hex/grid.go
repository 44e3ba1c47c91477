package hex

// Ring returns the axial coordinates at exact distance k from center c,
// starting from the south-west corner and walking the sides in Directions
// order. If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k <= 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(SouthWest.Scale(k))
	for _, side := range Directions {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Step(side)
		}
	}
	return res
}

// Disk returns all axial coordinates at distance <= r from center c,
// ordered by q then r.
func Disk(c Axial, r int) []Axial {
	if r < 0 {
		return nil
	}
	res := make([]Axial, 0, 1+3*r*(r+1))
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}

// Parallelogram returns every cell with qMin <= q <= qMax and
// rMin <= r <= rMax, ordered by q then r.
func Parallelogram(qMin, qMax, rMin, rMax int) []Axial {
	if qMax < qMin || rMax < rMin {
		return nil
	}
	res := make([]Axial, 0, (qMax-qMin+1)*(rMax-rMin+1))
	for q := qMin; q <= qMax; q++ {
		for r := rMin; r <= rMax; r++ {
			res = append(res, Axial{q, r})
		}
	}
	return res
}
