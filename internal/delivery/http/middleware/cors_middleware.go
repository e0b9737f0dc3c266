package middleware

import "net/http"

// CORSMiddleware answers cross-origin requests for the configured origins.
// A list containing "*" allows any origin; otherwise the request Origin is
// echoed back only when it is on the list.
type CORSMiddleware struct {
	allowAny bool
	origins  map[string]bool
}

func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	m := &CORSMiddleware{origins: map[string]bool{}}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			m.allowAny = true
			continue
		}
		m.origins[origin] = true
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch {
		case m.allowAny:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case m.origins[req.Header.Get("Origin")]:
			w.Header().Set("Access-Control-Allow-Origin", req.Header.Get("Origin"))
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
