package validate

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/user/quill-go/apperror"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20 // 1 MB

const formContentType = "application/x-www-form-urlencoded"

// Request decodes the body of r into dst and validates it with Struct.
// HTML form posts (`application/x-www-form-urlencoded`) are mapped onto dst's
// `json` field names; every other content type is decoded as JSON.
// An empty body is treated as an empty object, so it fails validation with the
// missing-fields error instead of a decoding error.
func Request(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var err error
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == formContentType {
		err = decodeForm(r, dst)
	} else {
		err = decodeJSON(r.Body, dst)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.NewBadRequestError("Request body too large", err)
		}
		return apperror.NewBadRequestError("Invalid request body", err)
	}

	return Struct(dst)
}

func decodeJSON(body io.Reader, dst interface{}) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// decodeForm takes the first value of each body field. Query parameters are
// not mixed in, and request DTOs only carry string fields.
func decodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, dst)
}
