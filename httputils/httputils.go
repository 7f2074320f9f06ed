package httputils

// RequestError is the JSON body returned for every failed request
type RequestError struct {
	Error string `json:"error"`
}
