package btree

import "log"

// defaultOptions to be used by New() when no options are given.
var defaultOptions = Options{
	Log: func(msg string, args ...interface{}) {
		log.Printf(msg, args...)
	},
}

// Options represents the configuration options for the tree.
type Options struct {
	// Log receives structural events (splits, root growth). Set it to a
	// no-op to silence the tree.
	Log func(msg string, args ...interface{})
}

func (o *Options) withDefaults() Options {
	if o == nil {
		return defaultOptions
	}
	opts := *o
	if opts.Log == nil {
		opts.Log = func(string, ...interface{}) {}
	}
	return opts
}
