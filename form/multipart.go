package form

import (
	"bytes"
	"mime/multipart"
)

// Multipart builds a multipart/form-data body from the form's controls
// and returns it with the boundary-qualified content type. File controls
// contribute file parts; select-multiple controls contribute one field
// part per selected option; every other control contributes a plain
// field part.
func Multipart(controls []Control) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, control := range controls {
		switch control.Type {
		case TypeFile:
			part, err := writer.CreateFormFile(control.Name, control.Filename)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(control.Content); err != nil {
				return nil, "", err
			}
		case TypeSelectMultiple:
			for _, option := range control.Options {
				if !option.Selected {
					continue
				}
				if err := writer.WriteField(control.Name, option.Value); err != nil {
					return nil, "", err
				}
			}
		default:
			if err := writer.WriteField(control.Name, control.Value); err != nil {
				return nil, "", err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}
