package cursors

// Fold consumes the cursor, threading an accumulator through every
// remaining element.
func Fold[T, R any](c Cursor[T], initial R, fold func(R, T) R) R {
	acc := initial
	for v := range c.Seq() {
		acc = fold(acc, v)
	}
	return acc
}

// TryFold is like [Fold] but stops at the first error, leaving the cursor
// positioned after the element that produced it.
func TryFold[T, R any](c Cursor[T], initial R, fold func(R, T) (R, error)) (R, error) {
	acc := initial
	var err error
	for v := range c.Seq() {
		acc, err = fold(acc, v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Collect drains the cursor into a slice. The slice is sized from the
// cursor's hint when one is available.
func Collect[T any](c Cursor[T]) []T {
	lower, _, _ := c.SizeHint()
	result := make([]T, 0, lower)
	for v := range c.Seq() {
		result = append(result, v)
	}
	return result
}
