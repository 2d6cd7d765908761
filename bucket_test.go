package s3sig

import (
	"errors"
	"testing"
)

func TestNewBucketRejectsMissingSchemeOrHost(t *testing.T) {
	cases := []string{"", "not a url", "/just/a/path", "ftp://host"}
	for _, endpoint := range cases {
		if _, err := NewBucket(endpoint, Path, "bucket", "us-east-1"); err == nil {
			t.Errorf("NewBucket(%q, ...) succeeded, want error", endpoint)
		} else {
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("NewBucket(%q, ...) error = %v, want *ConfigError", endpoint, err)
			}
		}
	}
}

func TestNewBucketDottedNameRejectedUnderVirtualHost(t *testing.T) {
	if _, err := NewBucket("https://s3.amazonaws.com", VirtualHost, "my.bucket", "us-east-1"); err == nil {
		t.Fatal("expected VirtualHost construction with a dotted bucket name to fail")
	}

	if _, err := NewBucket("https://s3.amazonaws.com", Path, "my.bucket", "us-east-1"); err != nil {
		t.Fatalf("Path-style construction with a dotted bucket name should succeed, got %v", err)
	}
}

func TestValidBucketName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"examplebucket", true},
		{"my-bucket-1", true},
		{"my.bucket", false},
		{"a", false},
		{"AB", false},
		{"-leading-hyphen", false},
	}
	for _, c := range cases {
		if got := ValidBucketName(c.name); got != c.want {
			t.Errorf("ValidBucketName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestBaseURLVirtualHostVsPath(t *testing.T) {
	vh, err := NewBucket("https://s3.amazonaws.com", VirtualHost, "examplebucket", "us-east-1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := vh.BaseURL("test.txt"), "https://examplebucket.s3.amazonaws.com/test.txt"; got != want {
		t.Errorf("VirtualHost BaseURL = %q, want %q", got, want)
	}

	ps, err := NewBucket("https://s3.amazonaws.com", Path, "examplebucket", "us-east-1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ps.BaseURL("test.txt"), "https://s3.amazonaws.com/examplebucket/test.txt"; got != want {
		t.Errorf("Path BaseURL = %q, want %q", got, want)
	}

	if got, want := ps.BaseURL(""), "https://s3.amazonaws.com/examplebucket"; got != want {
		t.Errorf("Path BaseURL(\"\") = %q, want %q", got, want)
	}
}

func TestBaseURLEncodesKey(t *testing.T) {
	b, err := NewBucket("https://s3.amazonaws.com", VirtualHost, "examplebucket", "us-east-1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.BaseURL("foo/bar baz"), "https://examplebucket.s3.amazonaws.com/foo/bar%20baz"; got != want {
		t.Errorf("BaseURL = %q, want %q", got, want)
	}
}
