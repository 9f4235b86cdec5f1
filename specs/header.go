package specs

// Header is a single named header with its raw, unparsed value.
//
// Headers are immutable once constructed; the normalizer produces a new
// Header instead of rewriting one, since the caller may reuse the original.
type Header struct {
	name  string
	value string
}

// NewHeader creates a Header from a name and raw value.
func NewHeader(name, value string) Header {
	return Header{name: name, value: value}
}

// Name returns the header name.
func (header Header) Name() string {
	return header.name
}

// Value returns the raw header value.
func (header Header) Value() string {
	return header.value
}
