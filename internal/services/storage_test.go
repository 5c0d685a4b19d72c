package services

import "testing"

func TestBucketForContentType(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"image/png", "images"},
		{"image/jpeg", "images"},
		{"IMAGE/GIF", "images"},
		{"video/mp4", "videos"},
		{"application/pdf", "documents"},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "documents"},
		{"application/zip", "other"},
		{"text/plain", "other"},
		{"", "other"},
	}
	for _, tc := range cases {
		if got := BucketForContentType(tc.contentType); got != tc.want {
			t.Fatalf("BucketForContentType(%q) = %q, want %q", tc.contentType, got, tc.want)
		}
	}
}
