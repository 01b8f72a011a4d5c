// Package plural picks the display form for counted nouns in languages with
// three plural forms (singular, paucal, plural), such as Russian.
package plural

// Form maps a non-negative count to a form index: 0 singular, 1 paucal, 2 plural.
// 1 → 0, 2..4 → 1, 5..20 → 2, 21 → 0, 22..24 → 1 and so on; 11..14 always 2.
func Form(count int) int {
	n10 := count % 10
	n100 := count % 100
	switch {
	case n10 == 1 && n100 != 11:
		return 0
	case n10 >= 2 && n10 <= 4 && !(n100 >= 12 && n100 <= 14):
		return 1
	default:
		return 2
	}
}

// Choose returns the form of a word matching count, e.g.
// Choose(3, "комментарий", "комментария", "комментариев").
func Choose(count int, one, few, many string) string {
	switch Form(count) {
	case 0:
		return one
	case 1:
		return few
	default:
		return many
	}
}
