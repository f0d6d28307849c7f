package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/textproto"
	"path/filepath"
)

// formFields flattens a JSON-tagged struct into multipart form values.
// Omitted (omitempty) fields are not sent.
func formFields(v any) (map[string]string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		switch x := val.(type) {
		case nil:
		case string:
			out[k] = x
		case json.Number:
			out[k] = x.String()
		case bool:
			if x {
				out[k] = "true"
			} else {
				out[k] = "false"
			}
		default:
			return nil, fmt.Errorf("form field %s: unsupported type %T", k, val)
		}
	}
	return out, nil
}

func filePartHeader(field, filename string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     field,
		"filename": filepath.Base(filename),
	}))
	ct := mime.TypeByExtension(filepath.Ext(filename))
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	return h
}
