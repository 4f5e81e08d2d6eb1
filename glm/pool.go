package glm

// pool is a bounded LIFO free-list of reusable instances. It is not safe
// for concurrent use; a pool belongs to one logical owner. Instances handed
// back via release must no longer be touched by the caller.
type pool[T any] struct {
	free  []*T
	limit int
}

func (p *pool[T]) request() *T {
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		p.free = p.free[:n-1]
		return obj
	}

	return new(T)
}

func (p *pool[T]) release(obj *T) {
	if len(p.free) < p.limit {
		p.free = append(p.free, obj)
	}
}

func (p *pool[T]) flush() {
	p.free = p.free[:0]
}

func (p *pool[T]) size() int {
	return len(p.free)
}
