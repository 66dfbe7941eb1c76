package resolver

import "context"

// Future is the single-shot result of one room code lookup.
type Future struct {
	done chan struct{}
	name string
	err  error
}

// Start runs the lookup on its own goroutine.
func Start(ctx context.Context, r Resolver, code string) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.name, f.err = r.RoomNameFromCode(ctx, code)
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the lookup finishes.
func (f *Future) Result() (string, error) {
	<-f.done
	return f.name, f.err
}

// Then hands fn to post once the lookup finishes. post decides where fn runs,
// typically the caller's own event loop.
func (f *Future) Then(post func(func()), fn func(name string, err error)) {
	go func() {
		name, err := f.Result()
		post(func() { fn(name, err) })
	}()
}
