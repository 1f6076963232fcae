package cookie

import "net/http"

// Middleware decodes the request cookies once and stores the record in the
// request context for downstream handlers (see FromContext).
func (d *Decoder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := d.DecodeRequest(r)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), c)))
	})
}
