package list

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	capacity int
	maxLen   int
}

func newDefaultListOptions() listOptions {
	return listOptions{
		capacity: 0,
		maxLen:   0,
	}
}

// WithCapacity option preallocates node storage for capacity elements.
//
// The zero value allocates storage on demand.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("list: negative capacity")
		}
		opts.capacity = capacity
	})
}

// WithMaxLen option limits the list to n elements. Pushing into a full
// list fails with ErrAllocationFailure.
//
// The zero value configures an unbounded list.
func WithMaxLen(n int) Option {
	return funcOption(func(opts *listOptions) {
		if n < 0 {
			panic("list: negative max length")
		}
		opts.maxLen = n
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
