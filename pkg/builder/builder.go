package builder

// Builder applies setters to a fresh T. The first failing MaybeUse stops the
// chain and its error is returned by Get.
type Builder[T any] struct {
	Obj *T
	Err error
}

func New[T any]() *Builder[T] {
	return &Builder[T]{
		Obj: new(T),
	}
}

func From[T any](obj *T) *Builder[T] {
	return &Builder[T]{Obj: obj}
}

func (b *Builder[T]) Use(setter func(b *T)) *Builder[T] {
	if b.Err == nil {
		setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) MaybeUse(setter func(b *T) error) *Builder[T] {
	if b.Err == nil {
		b.Err = setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) UseIf(cond bool, setter func(b *T) error) *Builder[T] {
	if cond {
		return b.MaybeUse(setter)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	return b.Obj, b.Err
}
