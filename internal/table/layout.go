package table

// Widths distributes total cells across columns separated by gap cells.
// Every column gets at least its Width (minimum 1). Leftover space goes to
// Flex columns in equal shares, the remainder to the leftmost ones. When
// total is too small the minimums are returned unchanged.
func Widths[T any](columns []Column[T], total, gap int) []int {
	widths := make([]int, len(columns))
	used := 0
	flex := 0
	for i, c := range columns {
		widths[i] = max(c.Width, 1)
		used += widths[i]
		if c.Flex {
			flex++
		}
	}
	if len(columns) > 1 {
		used += gap * (len(columns) - 1)
	}

	spare := total - used
	if spare <= 0 || flex == 0 {
		return widths
	}

	share, extra := spare/flex, spare%flex
	for i, c := range columns {
		if !c.Flex {
			continue
		}
		widths[i] += share
		if extra > 0 {
			widths[i]++
			extra--
		}
	}
	return widths
}
