package wizard

// Reconcile computes the current index after the step collection changed
// from old to next. The step that was current in old keeps being current if
// it still exists in next, wherever it moved. Otherwise the result is
// defaultIndex clamped into next, or -1 when next is empty.
func Reconcile(old, next []*Step, currentIndex, defaultIndex int) int {
	if len(next) == 0 {
		return -1
	}
	if currentIndex >= 0 && currentIndex < len(old) {
		if i := indexOf(next, old[currentIndex]); i >= 0 {
			return i
		}
	}
	switch {
	case defaultIndex < 0:
		return 0
	case defaultIndex >= len(next):
		return len(next) - 1
	default:
		return defaultIndex
	}
}
