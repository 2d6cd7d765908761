// Package canon implements the AWS SigV4 canonicalization rules that this
// module's signer hashes: percent-encoding, canonical URI, canonical query
// string, canonical headers, and the final canonical-request join. Every
// detail here must match the server byte-for-byte; see
// docs.aws.amazon.com/general/latest/gr/sigv4-create-canonical-request.html.
//
// Grounded on github.com/minio/minio-go's request-signature-v4.go
// (getCanonicalRequest / getCanonicalHeaders / getSignedHeaders), adapted
// so the canonicalizer has no *http.Request dependency: it operates on
// plain strings and maps so it can run standalone, sans-IO.
package canon

import (
	"sort"
	"strings"

	"github.com/objstore/s3sig/internal/debug"
)

// UnsignedPayload is the payload hash this module always signs with: the
// library never reads or hashes request bodies (see the s3sig package
// doc), so every request is signed as an unsigned payload.
const UnsignedPayload = "UNSIGNED-PAYLOAD"

// unreserved holds the bytes that §4.1/§6 of the spec leave unescaped:
// A-Z a-z 0-9 - _ . ~
var unreserved [256]bool

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		unreserved[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		unreserved[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		unreserved[c] = true
	}
	unreserved['-'] = true
	unreserved['_'] = true
	unreserved['.'] = true
	unreserved['~'] = true
}

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes s using the single shared "query"/"path segment"
// set from spec §6: everything outside unreserved is escaped, including
// space (always "%20", never "+"). Both canonical query values and
// canonical URI segments use this exact function.
func Encode(s string) string {
	var needsEscape bool
	for i := 0; i < len(s); i++ {
		if !unreserved[s[i]] {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// URI produces the canonical URI from a decoded request path: split on
// "/", percent-encode each segment, rejoin with "/". S3 uses single-pass
// encoding here, unlike most other SigV4 services which double-encode.
func URI(path string) string {
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = Encode(s)
	}
	return strings.Join(segments, "/")
}

// QueryString builds the canonical query string: parameters sorted by key
// (S3 never calls this with a duplicated key in this action set, so a
// plain map is sufficient), each key/value percent-encoded, parameters
// with no value emitted as "k=".
func QueryString(q map[string]string) string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Encode(k))
		b.WriteByte('=')
		b.WriteString(Encode(q[k]))
	}
	return b.String()
}

// collapseValue trims surrounding whitespace and collapses internal runs
// of spaces/tabs to a single space, except inside a quoted section.
func collapseValue(v string) string {
	v = strings.TrimSpace(v)

	var b strings.Builder
	b.Grow(len(v))
	inQuotes := false
	lastWasSpace := false
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '"' {
			inQuotes = !inQuotes
			b.WriteByte(c)
			lastWasSpace = false
			continue
		}
		if !inQuotes && (c == ' ' || c == '\t') {
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
			b.WriteByte(' ')
			continue
		}
		lastWasSpace = false
		b.WriteByte(c)
	}
	return b.String()
}

// Headers builds the canonical headers block and the signed-headers list
// for the given participating headers plus "host". Header names are
// lowercased; values are trimmed and have internal whitespace runs
// collapsed outside quoted sections. Entries are emitted in lexicographic
// order of the lowercased name.
func Headers(host string, headers map[string]string) (canonical string, signed string) {
	values := make(map[string]string, len(headers)+1)
	values["host"] = collapseValue(host)
	for k, v := range headers {
		values[strings.ToLower(k)] = collapseValue(v)
	}

	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(values[name])
		b.WriteByte('\n')
	}

	return b.String(), strings.Join(names, ";")
}

// Request joins the six canonical-request components with "\n" separators
// and no trailing newline. canonicalHeaders is expected to already end in
// "\n" per header line (per Headers above); Request adds the one
// additional separator the AWS formula requires before signedHeaders.
func Request(method, canonicalURI, canonicalQuery, canonicalHeaders, signedHeaders, payloadHash string) string {
	cr := strings.Join([]string{
		strings.ToUpper(method),
		canonicalURI,
		canonicalQuery,
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")
	debug.Log("canonical request:\n%s", cr)
	return cr
}
