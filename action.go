package s3sig

import "time"

// Action is the capability set every S3 operation value in this module
// implements (spec §4.3): its HTTP method, its mutable query/header maps,
// and the two signing forms — presigned-URL and Authorization-header.
//
// Per the "Polymorphism over actions" design note, this is an open
// interface with one concrete struct per operation (CreateBucketAction,
// GetObjectAction, ...) rather than a closed sum type, since Go has no
// closed enum; every concrete type embeds actionBase, which supplies all
// of these methods, so satisfying Action costs each action type nothing
// beyond its own operation-specific fields and constructor.
type Action interface {
	// Method returns the HTTP method this action is sent with.
	Method() string

	// Query returns the action's mutable query-parameter map. Values set
	// here are merged into, and therefore covered by, the signature.
	Query() Params

	// Headers returns the action's mutable header map. Values set here
	// participate in both the presigned-URL and header-signed canonical
	// request.
	Headers() Params

	// Bucket returns the Bucket this action targets.
	Bucket() *Bucket

	// Credentials returns the Credentials this action signs with, or nil
	// for an anonymous (unsigned) action.
	Credentials() *Credentials

	// Sign returns a presigned URL valid for expiresIn (truncated to whole
	// seconds), signed at the current time. With nil Credentials it returns the bare,
	// unsigned URL.
	Sign(expiresIn time.Duration) (string, error)

	// SignWithTime is Sign with an explicit signing time, for
	// deterministic tests.
	SignWithTime(now time.Time, expiresIn time.Duration) (string, error)

	// SignHeaders returns the method, URL and header set for an
	// Authorization-header-signed request, signed at the current time.
	// With nil Credentials it returns the bare method, URL and headers
	// with no signing performed.
	SignHeaders() (method, url string, headers map[string]string, err error)

	// SignHeadersWithTime is SignHeaders with an explicit signing time.
	SignHeadersWithTime(now time.Time) (method, url string, headers map[string]string, err error)
}

// actionBase is embedded by every concrete action type and implements the
// Action interface's common capability set, so each action type need only
// add its operation-specific fields and a constructor.
type actionBase struct {
	bucket  *Bucket
	creds   *Credentials
	method  string
	key     string
	query   Params
	headers Params
}

func newActionBase(b *Bucket, creds *Credentials, method, key string) actionBase {
	return actionBase{
		bucket:  b,
		creds:   creds,
		method:  method,
		key:     key,
		query:   Params{},
		headers: Params{},
	}
}

func (a *actionBase) Method() string            { return a.method }
func (a *actionBase) Query() Params             { return a.query }
func (a *actionBase) Headers() Params           { return a.headers }
func (a *actionBase) Bucket() *Bucket           { return a.bucket }
func (a *actionBase) Credentials() *Credentials { return a.creds }

func (a *actionBase) Sign(expiresIn time.Duration) (string, error) {
	return a.SignWithTime(time.Now(), expiresIn)
}

func (a *actionBase) SignWithTime(now time.Time, expiresIn time.Duration) (string, error) {
	return presign(a.bucket, a.creds, a.method, a.key, a.query, a.headers, now, expiresIn)
}

func (a *actionBase) SignHeaders() (method, url string, headers map[string]string, err error) {
	return a.SignHeadersWithTime(time.Now())
}

func (a *actionBase) SignHeadersWithTime(now time.Time) (method, url string, headers map[string]string, err error) {
	return signHeaders(a.bucket, a.creds, a.method, a.key, a.query, a.headers, now)
}
