package artifact

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// NormalizeJSON decodes raw bytes as a structured-data document and
// returns a KindJSON artifact. The full serialization is the canonical
// two-space pretty print of the decoded value.
func NormalizeJSON(name string, raw []byte) (Artifact, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return Artifact{}, &DecodeError{Name: name, Err: err}
	}
	full, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return Artifact{}, &DecodeError{Name: name, Err: err}
	}
	text := string(full)
	preview := text
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	return Artifact{
		ID:   newID(),
		Name: name,
		Kind: KindJSON,
		JSON: &JSONData{
			Value:   value,
			Full:    text,
			Preview: preview + "...",
		},
	}, nil
}

// NormalizeImage wraps raw image bytes as a KindImage artifact. The
// declared MIME type is retained when present, otherwise sniffed.
func NormalizeImage(name, mimeType string, raw []byte) (Artifact, error) {
	if int64(len(raw)) > MaxImageBytes {
		return Artifact{}, &SizeLimitError{Name: name, Size: int64(len(raw))}
	}
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(raw)
	}
	data := make([]byte, len(raw))
	copy(data, raw)
	return Artifact{
		ID:   newID(),
		Name: name,
		Kind: KindImage,
		Image: &ImageData{
			MIMEType:   mimeType,
			Data:       data,
			PreviewURI: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		},
	}, nil
}

// Normalize reads one upload and dispatches on the declared kind.
// declaredSize, when known (>= 0), rejects oversized images before any
// bytes are read.
func Normalize(name string, kind Kind, mimeType string, declaredSize int64, r io.Reader) (Artifact, error) {
	if kind == KindImage && declaredSize > MaxImageBytes {
		return Artifact{}, &SizeLimitError{Name: name, Size: declaredSize}
	}
	limit := io.Reader(r)
	if kind == KindImage {
		// one extra byte so an over-limit stream is detectable
		limit = io.LimitReader(r, MaxImageBytes+1)
	}
	raw, err := io.ReadAll(limit)
	if err != nil {
		return Artifact{}, &ReadError{Name: name, Err: err}
	}
	switch kind {
	case KindJSON:
		return NormalizeJSON(name, raw)
	case KindImage:
		return NormalizeImage(name, mimeType, raw)
	}
	return Artifact{}, &ReadError{Name: name, Err: errUnknownKind(kind)}
}

type errUnknownKind Kind

func (e errUnknownKind) Error() string { return "unknown artifact kind: " + string(e) }
