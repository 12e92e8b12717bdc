package specs

// HttpMethod represents the request method token. The vocabulary is closed:
// unknown tokens fail at parse time instead of flowing through as strings.
type HttpMethod string

const (
	HttpMethodGet    HttpMethod = "GET"
	HttpMethodPost   HttpMethod = "POST"
	HttpMethodPut    HttpMethod = "PUT"
	HttpMethodDelete HttpMethod = "DELETE"
	HttpMethodPatch  HttpMethod = "PATCH"
)

// ParseHttpMethod matches the token exactly against the closed vocabulary.
// Unknown tokens fail with [UnknownMethodError] carrying the offending token.
func ParseHttpMethod(token string) (HttpMethod, error) {
	switch method := HttpMethod(token); method {
	case HttpMethodGet, HttpMethodPost, HttpMethodPut,
		HttpMethodDelete, HttpMethodPatch:
		return method, nil
	}
	return "", &UnknownMethodError{Token: token}
}

// IsValid checks if the HttpMethod is one of the recognized method tokens.
func (method HttpMethod) IsValid() bool {
	return method == HttpMethodGet ||
		method == HttpMethodPost ||
		method == HttpMethodPut ||
		method == HttpMethodDelete ||
		method == HttpMethodPatch
}

// IsPostable checks if the HttpMethod is suitable for carrying a request body.
func (method HttpMethod) IsPostable() bool {
	return method == HttpMethodPost || method == HttpMethodPut ||
		method == HttpMethodDelete || method == HttpMethodPatch
}
