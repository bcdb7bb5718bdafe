package datasource

import "github.com/sgostarter/i/l"

type Options struct {
	logger             l.Wrapper
	supplementaryItems map[string]any
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithSupplementaryItems sets the supplementary items of a MutableDataSource, keyed by kind.
func WithSupplementaryItems(items map[string]any) Option {
	return func(o *Options) {
		o.supplementaryItems = items
	}
}
