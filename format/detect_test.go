package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, "HTML"},
		{XHTML, "XHTML"},
		{XML, "XML"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, ".html"},
		{XHTML, ".xhtml"},
		{XML, ".xml"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Features(t *testing.T) {
	if got := XML.Features(); got != "xml" {
		t.Errorf("XML.Features() = %q, want %q", got, "xml")
	}
	for _, f := range []Format{HTML, XHTML, Unknown} {
		if got := f.Features(); got != "" {
			t.Errorf("%v.Features() = %q, want empty", f, got)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"page.html", HTML},
		{"page.HTML", HTML},
		{"page.Htm", HTML},
		{"page.xhtml", XHTML},
		{"feed.xml", XML},
		{"feed.RSS", XML},
		{"logo.svg", XML},
		{"notes.txt", Unknown},
		{"page", Unknown},
		{"", Unknown},
		{"/path/to/page.html", HTML},
		{"/path/to/data.xml", XML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "HTML with whitespace before DOCTYPE",
			data: []byte("  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "XML declaration",
			data: []byte(`<?xml version="1.0"?><root/>`),
			want: XML,
		},
		{
			name: "XML declaration after BOM",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<?xml version="1.0"?><root/>`)...),
			want: XML,
		},
		{
			name: "XHTML",
			data: []byte(`<?xml version="1.0"?>` + "\n" + `<html xmlns="http://www.w3.org/1999/xhtml">`),
			want: XHTML,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "fragment",
			data: []byte("<p>hello</p>"),
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		markup string
		want   bool
	}{
		{"http://example.com/", true},
		{"https://example.com/page?q=1", true},
		{"ftp://example.com/", false},
		{"<a href='http://example.com/'>link</a>", false},
		{"http://example.com/ and more words", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeURL(tt.markup); got != tt.want {
			t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.markup, got, tt.want)
		}
	}
}

func TestLooksLikeFilename(t *testing.T) {
	tests := []struct {
		markup string
		want   bool
	}{
		{"index.html", true},
		{"INDEX.HTM", true},
		{"/var/www/page", true},
		{`C:\pages\index`, true},
		{"notes.txt", true},
		{"hello", false},
		{"hello world.html", false},
		{"<p>index.html</p>", false},
		{"https://example.com/index.html", false},
		{"a=b&c.html", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeFilename(tt.markup); got != tt.want {
			t.Errorf("LooksLikeFilename(%q) = %v, want %v", tt.markup, got, tt.want)
		}
	}
}
