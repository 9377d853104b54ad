package entityregistry

import (
	"cmp"
	"slices"
	"strings"
)

// Page describes a filtered, ordered, sliced query.
type Page[T any] struct {
	// Filter selects entities. Nil selects all.
	Filter func(T) bool

	// Compare orders the filtered entities, as in slices.SortStableFunc.
	// Nil orders by key.
	Compare func(a, b T) int

	// Skip is the number of ordered entities to drop. Negative means 0.
	Skip int

	// Take is the maximum number of entities to return. Negative means 0.
	Take int
}

// OrderBy returns an ascending comparator on the value extracted by key.
//
// Example:
//
//	// Active vehicles by speed, 10 per page, third page
//	r.GetPaged(entityregistry.Page[*Vehicle]{
//	    Filter:  func(v *Vehicle) bool { return v.Active },
//	    Compare: entityregistry.OrderBy(func(v *Vehicle) float64 { return v.Speed }),
//	    Skip:    20,
//	    Take:    10,
//	})
func OrderBy[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Descending reverses a comparator.
func Descending[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// GetPaged filters the stored entities with q.Filter, stable-sorts them with
// q.Compare, then skips q.Skip entities and returns at most q.Take. The result
// is empty, never nil, when Skip reaches past the filtered set.
//
// Filter and Compare run under the registry's read lock so they never
// observe a concurrent merge. They must not call back into the registry.
func (r *Registry[T]) GetPaged(q Page[T]) []T {
	compare := q.Compare
	if compare == nil {
		compare = func(a, b T) int {
			return strings.Compare(a.Key(), b.Key())
		}
	}

	r.mu.RLock()
	items := make([]T, 0, len(r.entries))
	for _, v := range r.entries {
		if q.Filter == nil || q.Filter(v) {
			items = append(items, v)
		}
	}
	slices.SortStableFunc(items, compare)
	r.mu.RUnlock()

	skip := max(q.Skip, 0)
	take := max(q.Take, 0)
	if skip >= len(items) || take == 0 {
		return []T{}
	}
	end := min(skip+take, len(items))
	return items[skip:end]
}
