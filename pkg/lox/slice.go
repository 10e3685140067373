package lox

func MapErr[T any, R any](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// SumErr adds up iteratee results and stops at the first error.
func SumErr[T any](collection []T, iteratee func(item T) (int64, error)) (int64, error) {
	var sum int64

	for _, item := range collection {
		v, err := iteratee(item)
		if err != nil {
			return 0, err
		}

		sum += v
	}

	return sum, nil
}

// Walk visits every node of a tree depth-first, parents before children.
func Walk[T any](roots []T, children func(item T) []T, visit func(item T) error) error {
	for _, root := range roots {
		if err := visit(root); err != nil {
			return err
		}

		if err := Walk(children(root), children, visit); err != nil {
			return err
		}
	}

	return nil
}
