package diff

// align computes the longest-common-subsequence alignment of the two sides
// and emits same/added/removed rows in ascending order.
//
// O(m*n) time and space. Fine for files up to a few thousand lines, which is
// the intended working set; there is no cancellation of an in-flight run.
func align(leftLines, rightLines []string) []Line {
	m, n := len(leftLines), len(rightLines)

	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if leftLines[i-1] == rightLines[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else {
				lcs[i][j] = max(lcs[i-1][j], lcs[i][j-1])
			}
		}
	}

	// Backtrack from (m,n). On a tie between taking an added or a removed
	// line, added wins; downstream chunk boundaries depend on this ordering,
	// so the >= comparison must stay exactly as is.
	backward := make([]Line, 0, max(m, n))
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && leftLines[i-1] == rightLines[j-1]:
			backward = append(backward, Line{
				Type:        LineSame,
				LeftText:    leftLines[i-1],
				RightText:   rightLines[j-1],
				LeftNumber:  i,
				RightNumber: j,
			})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			backward = append(backward, Line{
				Type:        LineAdded,
				RightText:   rightLines[j-1],
				RightNumber: j,
			})
			j--
		default:
			backward = append(backward, Line{
				Type:       LineRemoved,
				LeftText:   leftLines[i-1],
				LeftNumber: i,
			})
			i--
		}
	}

	forward := make([]Line, 0, len(backward))
	for k := len(backward) - 1; k >= 0; k-- {
		forward = append(forward, backward[k])
	}
	return forward
}
