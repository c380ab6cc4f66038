package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/deanrtaylor1/gowordcloud/freq"
)

func TestWriteLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_cloud.log")
	entries := []freq.Entry{{Token: "API", Count: 3}, {Token: "機械学習", Count: 1}}

	if err := WriteLog(entries, path); err != nil {
		t.Fatalf("WriteLog() Failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "API\t3\n機械学習\t1"
	if string(data) != expected {
		t.Errorf("WriteLog() Failed, expected %q, got %q", expected, string(data))
	}
}

func TestImageRequiresFont(t *testing.T) {
	entries := []freq.Entry{{Token: "word", Count: 1}}
	err := Image(entries, Options{Width: 100, Height: 100, BgColor: "white"}, filepath.Join(t.TempDir(), "out.png"))
	if err == nil {
		t.Error("Image() expected an error without a font path")
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("white")
	if err != nil || c != color.White {
		t.Errorf("parseColor() Failed on white: %v %v", c, err)
	}

	c, err = parseColor("#336699")
	if err != nil {
		t.Fatalf("parseColor() Failed on hex: %v", err)
	}
	if c != (color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
		t.Errorf("parseColor() Failed, got %v", c)
	}

	if _, err = parseColor("not-a-color"); err == nil {
		t.Error("parseColor() expected an error for an unknown color")
	}
}
