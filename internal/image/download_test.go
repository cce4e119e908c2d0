package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/youruser/featuregen/internal/config"
)

// pngWithHeader returns a PNG whose IHDR claims w x h RGBA pixels followed
// by a small zero IDAT. Only the header is valid; decoding it in full would
// allocate w*h*4 bytes.
func pngWithHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.Write([]byte("\x89PNG\r\n\x1a\n"))
	chunk := func(typ string, data []byte) {
		binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		buf.WriteString(typ)
		buf.Write(data)
		binary.Write(&buf, binary.BigEndian, crc.Sum32())
	}
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	chunk("IHDR", ihdr)
	chunk("IDAT", make([]byte, 4096))
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestDecodeBase64ImageRejectsHugeDimensions(t *testing.T) {
	data := base64.StdEncoding.EncodeToString(pngWithHeader(30000, 30000))
	_, err := DecodeBase64Image(data)
	if !errors.Is(err, ErrBackgroundFetch) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Fatalf("err = %v", err)
	}
}

func TestDownloadImageRejectsHugeDimensions(t *testing.T) {
	body := pngWithHeader(20000, 5000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	_, err := NewFetcher(nil).DownloadImage(context.Background(), srv.URL)
	if !errors.Is(err, ErrBackgroundFetch) || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("err = %v", err)
	}
}

func TestRenderHugeInlineBackgroundFails(t *testing.T) {
	r := newTestRenderer(t, nil, nil)
	data := base64.StdEncoding.EncodeToString(pngWithHeader(30000, 30000))
	_, err := r.Render(context.Background(), Request{MainText: "x", BgImageBase64: data})
	if KindOf(err) != KindBackgroundFetch {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeBase64ImageRejectsOversizedPayload(t *testing.T) {
	data := strings.Repeat("A", base64.StdEncoding.EncodedLen(maxImageBytes)+4)
	if _, err := DecodeBase64Image(data); !errors.Is(err, ErrBackgroundFetch) || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeImageAcceptsNormalSizes(t *testing.T) {
	img, err := decodeImage(pngBytes(t, 64, 32, white))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestConfiguredFetcherKeepsRedirectLimit(t *testing.T) {
	srv := imageServer(t)
	f := newConfiguredFetcher(config.Config{FetchTimeout: 5 * time.Second, MaxRedirects: 1})

	if _, err := f.DownloadImage(context.Background(), srv.URL+"/r/0"); err != nil {
		t.Fatalf("one redirect: %v", err)
	}
	if _, err := f.DownloadImage(context.Background(), srv.URL+"/r/1"); !errors.Is(err, ErrBackgroundFetch) {
		t.Fatalf("two redirects: err = %v", err)
	}
}
