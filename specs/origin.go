package specs

// CookieOrigin describes the request/response exchange a cookie header is
// parsed or matched against. It is supplied by the transport layer and is
// read-only to the parsing core.
type CookieOrigin struct {
	Host   string
	Port   int
	Path   string
	Secure bool
}
