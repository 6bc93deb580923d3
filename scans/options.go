package scans

type Options struct {
	// emit Whitespace and Comment tokens instead of skipping them
	RetainTrivia bool
	// block comments nest, /* /* */ */ is one comment
	NestedComments bool
}

type Option func(*Options)

func RetainTrivia(b bool) Option {
	return func(o *Options) {
		o.RetainTrivia = b
	}
}

func NestedComments(b bool) Option {
	return func(o *Options) {
		o.NestedComments = b
	}
}

func WithOptions(options Options) Option {
	return func(o *Options) {
		*o = options
	}
}
