package jvalue

// Compare reports whether a and b are structurally equal. Values of
// different kinds are unequal, numbers compare with == so NaN never equals
// itself, strings and raw text compare byte for byte, arrays compare
// position by position and objects compare member by member through name
// lookup in both directions. With caseSensitive false member names match
// ignoring ASCII case. A nil or Invalid node is unequal to everything,
// itself included.
func Compare(a, b *Node, caseSensitive bool) bool {
	if a.IsInvalid() || b.IsInvalid() || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case False, True, Null:
		return true
	case Number:
		return a.num == b.num
	case String, Raw:
		return a.text == b.text
	case Array:
		ai, bi := a.items(), b.items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !Compare(ai[i], bi[i], caseSensitive) {
				return false
			}
		}
		return true
	case Object:
		return membersIn(a, b, caseSensitive) && membersIn(b, a, caseSensitive)
	}
	return false
}

// membersIn reports whether every member of a has an equal counterpart in
// b. The k-th member of a with a given name pairs with the k-th member of b
// with that name.
func membersIn(a, b *Node, caseSensitive bool) bool {
	byName := make(map[string][]*Node, b.Len())
	for _, m := range b.items() {
		k := memberKey(m.name, caseSensitive)
		byName[k] = append(byName[k], m)
	}
	seen := make(map[string]int, a.Len())
	for _, m := range a.items() {
		k := memberKey(m.name, caseSensitive)
		candidates := byName[k]
		nth := seen[k]
		seen[k]++
		if nth >= len(candidates) || !Compare(m, candidates[nth], caseSensitive) {
			return false
		}
	}
	return true
}

func memberKey(name string, caseSensitive bool) string {
	if caseSensitive {
		return name
	}
	b := []byte(name)
	for i, c := range b {
		b[i] = lower(c)
	}
	return string(b)
}

// Equal reports whether n and other are structurally equal with
// case-sensitive member names.
func (n *Node) Equal(other *Node) bool {
	return Compare(n, other, true)
}
