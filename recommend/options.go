package recommend

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/viant/tagrec/vector"
)

type options struct {
	maxFeatures int
	filter      vector.TokenFilter
	logger      logrus.FieldLogger
}

// Option configures New.
type Option func(*options)

// WithMaxFeatures caps the vocabulary size (default vector.DefaultMaxFeatures).
func WithMaxFeatures(k int) Option {
	return func(o *options) { o.maxFeatures = k }
}

// WithTokenFilter replaces vector.DefaultTokenFilter.
func WithTokenFilter(f vector.TokenFilter) Option {
	return func(o *options) { o.filter = f }
}

// WithLogger sets the logger used for build and query diagnostics.
// A nil logger disables logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		maxFeatures: vector.DefaultMaxFeatures,
		filter:      vector.DefaultTokenFilter,
		logger:      discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
