package provider

// Option customizes an adapter at construction time. Production code uses the
// vendor defaults; tests point adapters at stub servers.
type Option func(*options)

type options struct {
	baseURL string
	client  httpDoer
}

// WithBaseURL overrides the vendor's API base URL.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithHTTPClient overrides the HTTP client of a raw-HTTP adapter. Ignored by
// the SDK-backed adapters, which manage their own transport.
func WithHTTPClient(client httpDoer) Option {
	return func(o *options) { o.client = client }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
