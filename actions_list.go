package s3sig

import "strconv"

// ListObjectsV2Action signs a GET against the bucket root with
// list-type=2, listing the bucket's keys a page at a time. Prefix,
// Delimiter, ContinuationToken, StartAfter and MaxKeys are optional and
// set via the convenience setters below (or directly via Query()).
//
// The request always carries encoding-type=url, so ParseListObjectsV2Output
// can unconditionally percent-decode the Key/Prefix/Delimiter/StartAfter/
// ContinuationToken fields of the response it parses (real S3 responses
// need this encoding to round-trip keys containing control characters).
type ListObjectsV2Action struct {
	actionBase
}

// ListObjectsV2 builds a ListObjectsV2Action against b.
func (b *Bucket) ListObjectsV2(creds *Credentials) *ListObjectsV2Action {
	a := &ListObjectsV2Action{actionBase: newActionBase(b, creds, "GET", "")}
	a.query.Set("list-type", "2")
	a.query.Set("encoding-type", "url")
	return a
}

// Prefix restricts the listing to keys beginning with prefix.
func (a *ListObjectsV2Action) Prefix(prefix string) *ListObjectsV2Action {
	a.query.Set("prefix", prefix)
	return a
}

// Delimiter groups keys sharing a prefix up to the first occurrence of
// delimiter into a CommonPrefixes entry instead of listing them
// individually.
func (a *ListObjectsV2Action) Delimiter(delimiter string) *ListObjectsV2Action {
	a.query.Set("delimiter", delimiter)
	return a
}

// ContinuationToken resumes a listing from the NextContinuationToken of a
// previous, truncated response.
func (a *ListObjectsV2Action) ContinuationToken(token string) *ListObjectsV2Action {
	a.query.Set("continuation-token", token)
	return a
}

// StartAfter starts the listing lexicographically after key, without
// requiring it to be returned by a previous response.
func (a *ListObjectsV2Action) StartAfter(key string) *ListObjectsV2Action {
	a.query.Set("start-after", key)
	return a
}

// MaxKeys caps the number of keys a single response returns. max must be
// in [1, 1000].
func (a *ListObjectsV2Action) MaxKeys(max int) (*ListObjectsV2Action, error) {
	if max < 1 || max > 1000 {
		return nil, &ParamError{Param: "maxKeys", Message: "must be between 1 and 1000"}
	}
	a.query.Set("max-keys", strconv.Itoa(max))
	return a, nil
}
