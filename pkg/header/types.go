// Package header defines the Kind/APIVersion/Metadata block embedded in
// every structured document.
package header

// API identity of every structured document chaos-agent emits.
const (
	APIDomain      = "chaos.hypha.dev"
	APIVersion     = "v1alpha1"
	FullAPIVersion = APIDomain + "/" + APIVersion
)

// Document kinds.
const (
	KindRecommendation = "ChaosRecommendation"
	KindCatalog        = "ScenarioCatalog"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind string) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// New creates a new Header with APIVersion set to FullAPIVersion, then
// applies opts. Metadata stays nil unless an option populates it, so an
// empty header serializes without a metadata block.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: FullAPIVersion,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header contains the Kubernetes-style identity of a document: Kind,
// APIVersion and free-form Metadata.
//
// No timestamps are recorded; two documents built from identical inputs
// are byte-identical.
type Header struct {
	// Kind is the type of the document.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
