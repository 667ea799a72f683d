package engine

// Percent converts step position into the displayed progress percentage:
// floor(completed * 100 / total), clamped to 99 while work remains. 100 is
// reserved strictly for full-run completion because a premature 100% reading
// is indistinguishable from success if a later step then fails.
func Percent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}

	pct := completed * 100 / total
	if pct > 99 {
		pct = 99
	}
	return pct
}
