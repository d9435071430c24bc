package http_cookie

import "net/http"

// Name is the cookie the whole platform keys sessions on.
const Name = "session_id"

// Set issues the session cookie. Attributes are fixed:
// HttpOnly; Secure; SameSite=Strict; Path=/.
func Set(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear overwrites the cookie with the "deleted" marker and Max-Age=0 so the
// browser drops it immediately.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "deleted",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
