package s3sig

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/objstore/s3sig/internal/canon"
	intErrors "github.com/objstore/s3sig/internal/errors"
)

// UrlStyle selects how a Bucket's name is folded into request URLs.
type UrlStyle int

const (
	// VirtualHost prepends the bucket name as a DNS label to the
	// endpoint's host: scheme://name.host[:port]/key.
	VirtualHost UrlStyle = iota
	// Path makes the bucket name the first path segment:
	// scheme://host[:port]/name/key.
	Path
)

func (s UrlStyle) String() string {
	switch s {
	case VirtualHost:
		return "VirtualHost"
	case Path:
		return "Path"
	default:
		return "UrlStyle(?)"
	}
}

// bucketNameRE matches S3 DNS-valid bucket names (a conservative subset of
// the real rules, sufficient to reject the common mistakes: too short,
// upper-case, leading/trailing hyphen).
var bucketNameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]{1,61}[a-z0-9]$`)

// ValidBucketName reports whether name is safe to use under VirtualHost:
// DNS-label shaped and free of dots, which would otherwise defeat TLS
// certificate matching against *.s3.amazonaws.com-style wildcards.
func ValidBucketName(name string) bool {
	return bucketNameRE.MatchString(name) && !strings.Contains(name, ".")
}

// Bucket is an immutable description of where an S3 bucket lives: its
// endpoint, addressing style, name and region. Every Action is built from
// a Bucket via a factory method.
type Bucket struct {
	endpoint *url.URL
	style    UrlStyle
	name     string
	region   string
}

// NewBucket validates and constructs a Bucket. endpoint must be an
// absolute URL with scheme http or https and a host; under VirtualHost,
// name must satisfy ValidBucketName.
func NewBucket(endpoint string, style UrlStyle, name, region string) (*Bucket, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ConfigError{Field: "endpoint", Message: err.Error(), Cause: intErrors.Wrap(err, "parse endpoint")}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ConfigError{Field: "endpoint", Message: "missing or unsupported scheme, want http or https"}
	}
	if u.Host == "" {
		return nil, &ConfigError{Field: "endpoint", Message: "missing host"}
	}
	if style == VirtualHost && !ValidBucketName(name) {
		return nil, &ConfigError{Field: "name", Message: "not a valid DNS-style bucket name for VirtualHost addressing (must be lowercase, hyphen-only, and dot-free)"}
	}

	return &Bucket{
		endpoint: u,
		style:    style,
		name:     name,
		region:   region,
	}, nil
}

// Name returns the bucket's name.
func (b *Bucket) Name() string { return b.name }

// Region returns the bucket's region.
func (b *Bucket) Region() string { return b.region }

// Style returns the bucket's URL addressing style.
func (b *Bucket) Style() UrlStyle { return b.style }

// host returns the Host that a request for this bucket and key must be
// sent (and signed) against.
func (b *Bucket) host() string {
	if b.style == VirtualHost {
		return b.name + "." + b.endpoint.Host
	}
	return b.endpoint.Host
}

// keyPath builds the decoded request path for the given object key
// ("" for a bucket-level action). A "/" inside key is appended verbatim
// and later split into its own canonical-URI segment like any other path
// separator (spec §3: "appended path-segment by path-segment"), so a key
// such as "a/b" signs as two segments "a" and "b", not a single segment
// with an encoded slash.
func (b *Bucket) keyPath(key string) string {
	var prefix string
	if b.style == Path {
		prefix = "/" + b.name
	}
	if key == "" {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	return prefix + "/" + key
}

// canonicalURIFor returns the canonical URI (per internal/canon.URI) for
// key under this bucket's addressing style.
func (b *Bucket) canonicalURIFor(key string) string {
	return canon.URI(b.keyPath(key))
}

// BaseURL returns the absolute, unsigned URL at which key lives in this
// bucket ("" addresses the bucket itself), with no query string. It is
// built with the same single-pass percent-encoding the signer uses for
// the canonical URI, so the path bytes returned here are exactly the
// bytes a signed request would carry over the wire.
func (b *Bucket) BaseURL(key string) string {
	return b.endpoint.Scheme + "://" + b.host() + b.canonicalURIFor(key)
}
