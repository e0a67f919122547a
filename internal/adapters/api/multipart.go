package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// encodeMultipart builds a multipart/form-data body with the given text
// fields plus an optional single file part. Fields are written in key order
// so request bodies are reproducible in tests.
func encodeMultipart(fields map[string]string, fileField, filename string, file io.Reader) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := writer.WriteField(key, fields[key]); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", key, err)
		}
	}

	if file != nil {
		if filename == "" {
			filename = "photo"
		}
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %q: %w", fileField, err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", fmt.Errorf("copy form file %q: %w", fileField, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
