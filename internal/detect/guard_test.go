package detect

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestParseGuardOutputSafe(t *testing.T) {
	res := ParseGuardOutput("Safety: Safe\nCategories: None")
	if res.Flagged {
		t.Error("expected safe output to be unflagged")
	}
	if res.SafetyLabel != LabelSafe {
		t.Errorf("expected %s, got %s", LabelSafe, res.SafetyLabel)
	}
	if len(res.Categories) != 0 {
		t.Errorf("expected None to be filtered out, got %v", res.Categories)
	}
}

func TestParseGuardOutputUnsafe(t *testing.T) {
	res := ParseGuardOutput("Safety: Unsafe\nCategories: Violent, Jailbreak")
	if !res.Flagged {
		t.Error("expected unsafe output to be flagged")
	}
	if res.SafetyLabel != LabelUnsafe {
		t.Errorf("expected %s, got %s", LabelUnsafe, res.SafetyLabel)
	}
	if len(res.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", res.Categories)
	}
	if res.Categories[0] != "Violent" || res.Categories[1] != "Jailbreak" {
		t.Errorf("unexpected categories: %v", res.Categories)
	}
}

func TestParseGuardOutputControversial(t *testing.T) {
	res := ParseGuardOutput("safety: controversial\nCategories: Politically Sensitive Topics")
	if res.Flagged {
		t.Error("controversial output must not be flagged")
	}
	if res.SafetyLabel != LabelControversial {
		t.Errorf("expected %s, got %s", LabelControversial, res.SafetyLabel)
	}
}

func TestParseGuardOutputGarbage(t *testing.T) {
	res := ParseGuardOutput("model rambled about something else entirely")
	if res.Flagged {
		t.Error("unparseable output must not be flagged")
	}
	if res.SafetyLabel != LabelUnknown {
		t.Errorf("expected %s, got %s", LabelUnknown, res.SafetyLabel)
	}
}

func TestDecodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in, err := DecodeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if in.Image == nil {
		t.Fatal("expected decoded image")
	}
	if in.SHA256 == "" || len(in.SHA256) != 64 {
		t.Errorf("expected hex sha256 digest, got %q", in.SHA256)
	}

	if _, err := DecodeImage([]byte("not pixels")); err == nil {
		t.Error("expected error for undecodable bytes")
	}
}

func TestNewTextInputDigestStable(t *testing.T) {
	a := NewTextInput("same content")
	b := NewTextInput("same content")
	c := NewTextInput("other content")

	if a.SHA256 != b.SHA256 {
		t.Error("expected identical content to hash identically")
	}
	if a.SHA256 == c.SHA256 {
		t.Error("expected different content to hash differently")
	}
}
