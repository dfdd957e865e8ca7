package scene

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilewalk/search"
)

// Option configures a Scene.
type Option func(*options)

type options struct {
	log        logrus.FieldLogger
	searchOpts []search.Option
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return options{log: l}
}

// WithLogger routes scene logging to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSearchOptions forwards hooks to the underlying search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *options) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}
