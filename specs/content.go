package specs

// Content type tokens emitted by this server.
const (
	ContentTypePlain = "text/plain"
)

// ContentEncoding tokens per the IANA HTTP Content-Encoding registry.
const (
	ContentEncodingGzip    = "gzip"
	ContentEncodingDeflate = "deflate"
	ContentEncodingBrotli  = "br"
)
