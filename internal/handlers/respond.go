// Package handlers implements the HTTP layer of the content API. One
// generic Resource handler serves every entry in the models catalog; it
// performs request parsing, validation, and status-code mapping, and
// delegates persistence to the store and storage packages.
package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMessage writes the API's standard {"message": ...} envelope, used
// for both error responses and delete confirmations.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
