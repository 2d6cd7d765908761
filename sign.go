package s3sig

import (
	"strconv"
	"time"

	"github.com/objstore/s3sig/internal/canon"
	"github.com/objstore/s3sig/internal/sigv4"
)

const (
	minExpiry = 1 * time.Second
	maxExpiry = 7 * 24 * time.Hour
)

func validateExpiry(expiresIn time.Duration) error {
	if expiresIn < minExpiry || expiresIn > maxExpiry {
		return &ParamError{Param: "expiresIn", Message: "must be between 1 second and 604800 seconds (7 days)"}
	}
	return nil
}

// presign implements the query-string ("presigned URL") signing form
// (spec §5.1): the signature and its supporting X-Amz-* parameters are
// added to the query string, so the result is a plain URL any HTTP client
// can fetch with no special headers.
//
// expiresIn is validated unconditionally, even with nil creds: an
// anonymous presign never embeds X-Amz-Expires in the URL, but a caller
// switching a call site between signed and anonymous use shouldn't find
// expiry validation silently disappear depending on which credentials
// happen to be set.
//
// With nil creds, it returns the bare, unsigned URL (spec's anonymous
// short-circuit): no X-Amz-* parameters are added.
func presign(b *Bucket, creds *Credentials, method, key string, query, headers Params, now time.Time, expiresIn time.Duration) (string, error) {
	if err := validateExpiry(expiresIn); err != nil {
		return "", err
	}

	canonicalURI := b.canonicalURIFor(key)
	host := b.host()

	if creds == nil {
		url := b.endpoint.Scheme + "://" + host + canonicalURI
		if qs := canon.QueryString(query); qs != "" {
			url += "?" + qs
		}
		return url, nil
	}

	_, signedHeaders := canon.Headers(host, headers)

	q := query.clone()
	q.Set("X-Amz-Algorithm", sigv4.Algorithm)
	q.Set("X-Amz-Credential", sigv4.Credential(creds.Key(), now, b.region))
	q.Set("X-Amz-Date", sigv4.AmzDate(now))
	q.Set("X-Amz-Expires", strconv.FormatInt(int64(expiresIn/time.Second), 10))
	q.Set("X-Amz-SignedHeaders", signedHeaders)
	if tok := creds.SessionToken(); tok != "" {
		q.Set("X-Amz-Security-Token", tok)
	}

	canonicalQuery := canon.QueryString(q)
	canonicalHeaders, _ := canon.Headers(host, headers)

	cr := canon.Request(method, canonicalURI, canonicalQuery, canonicalHeaders, signedHeaders, canon.UnsignedPayload)
	scope := sigv4.Scope(now, b.region)
	sts := sigv4.StringToSign(now, scope, cr)
	signingKey := sigv4.SigningKey(creds.Secret(), now, b.region)
	sig := sigv4.Sign(signingKey, sts)

	return b.endpoint.Scheme + "://" + host + canonicalURI + "?" + canonicalQuery + "&X-Amz-Signature=" + sig, nil
}

// signHeaders implements the Authorization-header signing form
// (spec §5.2): the signature is returned as an Authorization header
// alongside x-amz-date and x-amz-content-sha256, rather than embedded in
// the URL, so the caller's transport must attach these headers itself.
//
// With nil creds, it returns the bare method, URL and caller-supplied
// headers with no signing performed.
func signHeaders(b *Bucket, creds *Credentials, method, key string, query, headers Params, now time.Time) (string, string, map[string]string, error) {
	canonicalURI := b.canonicalURIFor(key)
	host := b.host()
	rawQuery := canon.QueryString(query)

	url := b.endpoint.Scheme + "://" + host + canonicalURI
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	if creds == nil {
		return method, url, map[string]string(headers.clone()), nil
	}

	hdrs := headers.clone()
	hdrs.Set("X-Amz-Date", sigv4.AmzDate(now))
	hdrs.Set("X-Amz-Content-Sha256", canon.UnsignedPayload)
	if tok := creds.SessionToken(); tok != "" {
		hdrs.Set("X-Amz-Security-Token", tok)
	}

	canonicalHeaders, signedHeaders := canon.Headers(host, hdrs)
	cr := canon.Request(method, canonicalURI, rawQuery, canonicalHeaders, signedHeaders, canon.UnsignedPayload)
	scope := sigv4.Scope(now, b.region)
	sts := sigv4.StringToSign(now, scope, cr)
	signingKey := sigv4.SigningKey(creds.Secret(), now, b.region)
	sig := sigv4.Sign(signingKey, sts)

	hdrs.Set("Authorization", sigv4.Algorithm+" Credential="+sigv4.Credential(creds.Key(), now, b.region)+
		", SignedHeaders="+signedHeaders+", Signature="+sig)

	return method, url, map[string]string(hdrs), nil
}
