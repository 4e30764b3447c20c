package artifact

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNormalizeJSON_PrettyPrintAndPreview(t *testing.T) {
	raw := []byte(`{"title":"Invoice","items":[{"sku":"a","qty":1},{"sku":"b","qty":2}]}`)
	a, err := NormalizeJSON("invoice.json", raw)
	if err != nil {
		t.Fatalf("NormalizeJSON error: %v", err)
	}
	if a.Kind != KindJSON || a.JSON == nil || a.Image != nil {
		t.Fatalf("unexpected artifact shape: %+v", a)
	}
	if a.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if !strings.Contains(a.JSON.Full, "\n  \"items\"") {
		t.Fatalf("expected pretty-printed serialization, got %q", a.JSON.Full)
	}
	if !strings.HasSuffix(a.JSON.Preview, "...") {
		t.Fatalf("preview missing ellipsis marker: %q", a.JSON.Preview)
	}
	if !strings.HasPrefix(a.JSON.Full, strings.TrimSuffix(a.JSON.Preview, "...")) {
		t.Fatalf("preview is not a prefix of the full serialization")
	}
}

func TestNormalizeJSON_PreviewTruncatesAt300(t *testing.T) {
	big := `{"rows":[` + strings.Repeat(`{"v":"xxxxxxxxxx"},`, 100)
	big = strings.TrimSuffix(big, ",") + `]}`
	a, err := NormalizeJSON("big.json", []byte(big))
	if err != nil {
		t.Fatalf("NormalizeJSON error: %v", err)
	}
	if got := len(a.JSON.Preview); got != 300+len("...") {
		t.Fatalf("preview length = %d, want 303", got)
	}
}

func TestNormalizeJSON_DecodeErrorKeepsParserMessage(t *testing.T) {
	_, err := NormalizeJSON("bad.json", []byte(`{"unterminated`))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Name != "bad.json" || de.Err == nil {
		t.Fatalf("decode error missing context: %+v", de)
	}
}

func TestNormalizeImage_SizeBound(t *testing.T) {
	over := make([]byte, MaxImageBytes+1)
	_, err := NormalizeImage("huge.png", "image/png", over)
	var se *SizeLimitError
	if !errors.As(err, &se) {
		t.Fatalf("expected SizeLimitError, got %v", err)
	}

	exact := make([]byte, MaxImageBytes)
	a, err := NormalizeImage("exact.png", "image/png", exact)
	if err != nil {
		t.Fatalf("image at exactly the bound should normalize: %v", err)
	}
	if a.Kind != KindImage || len(a.Image.Data) != MaxImageBytes {
		t.Fatalf("unexpected image artifact: kind=%s len=%d", a.Kind, len(a.Image.Data))
	}
}

func TestNormalizeImage_PreviewDataURI(t *testing.T) {
	a, err := NormalizeImage("dot.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	if err != nil {
		t.Fatalf("NormalizeImage error: %v", err)
	}
	if !strings.HasPrefix(a.Image.PreviewURI, "data:image/png;base64,") {
		t.Fatalf("unexpected preview uri: %q", a.Image.PreviewURI)
	}
}

func TestNormalize_DeclaredSizeRejectedBeforeRead(t *testing.T) {
	r := failingReader{}
	_, err := Normalize("huge.png", KindImage, "image/png", MaxImageBytes+1, r)
	var se *SizeLimitError
	if !errors.As(err, &se) {
		t.Fatalf("expected SizeLimitError before reading, got %v", err)
	}
}

func TestNormalize_ReadError(t *testing.T) {
	_, err := Normalize("broken.json", KindJSON, "", -1, failingReader{})
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReadError, got %v", err)
	}
}

func TestNormalize_JSONRoundTrip(t *testing.T) {
	a, err := Normalize("ok.json", KindJSON, "", -1, bytes.NewReader([]byte(`[1,2,3]`)))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if a.JSON == nil || !strings.HasPrefix(a.JSON.Full, "[") {
		t.Fatalf("unexpected artifact: %+v", a)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }
