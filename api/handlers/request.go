package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
)

// maxBodyBytes caps form and JSON bodies
const maxBodyBytes = 100 << 10

// formValues reads a form-encoded or JSON body and returns a lookup for its top level
// fields. JSON values that are not strings read as "".
func formValues(w http.ResponseWriter, r *http.Request) (func(string) string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return func(key string) string {
			s, _ := body[key].(string)
			return s
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostFormValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeHTML(w http.ResponseWriter, status int, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(page))
}
