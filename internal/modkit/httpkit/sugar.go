package httpkit

import "net/http"

// GetJSON mounts a body-less handler under GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a JSON body handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, JSON(h, opts...))
}
