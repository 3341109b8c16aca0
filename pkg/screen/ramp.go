package screen

// Step moves current one ramp step toward target: a quarter of the
// remaining distance, at least 1, never past target.
func Step(current, target int) int {
	diff := target - current
	if diff == 0 {
		return current
	}

	step := diff / 4
	if step == 0 {
		if diff > 0 {
			step = 1
		} else {
			step = -1
		}
	}

	next := current + step
	if (step > 0 && next > target) || (step < 0 && next < target) {
		return target
	}
	return next
}
