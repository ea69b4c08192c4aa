package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty image data")
	}
	if len(result.Thumb) == 0 {
		t.Error("expected non-empty thumbnail data")
	}
}

func TestProcessPNGConvertsToJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected conversion to image/jpeg, got %s", result.MIME)
	}
}

func TestProcessDownscalesLargeImage(t *testing.T) {
	data := createTestJPEG(2*MaxDimension, MaxDimension)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() > MaxDimension || img.Bounds().Dy() > MaxDimension {
		t.Errorf("image not downscaled: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	thumb, _, err := image.Decode(bytes.NewReader(result.Thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	if thumb.Bounds().Dx() > ThumbDimension || thumb.Bounds().Dy() > ThumbDimension {
		t.Errorf("thumbnail not downscaled: %dx%d", thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}
}

func TestProcessKeepsSmallImageSize(t *testing.T) {
	data := createTestJPEG(50, 80)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 80 {
		t.Errorf("small image resized: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	_, err := Process(bytes.NewReader([]byte("definitely not an image")))
	if err == nil {
		t.Error("expected error for non-image data")
	}
}
