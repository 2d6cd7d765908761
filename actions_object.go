package s3sig

// HeadObjectAction signs a HEAD against a single object key, returning its
// metadata without a body.
type HeadObjectAction struct {
	actionBase
}

// HeadObject builds a HeadObjectAction for key. key must be non-empty.
func (b *Bucket) HeadObject(creds *Credentials, key string) (*HeadObjectAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	return &HeadObjectAction{actionBase: newActionBase(b, creds, "HEAD", key)}, nil
}

// GetObjectAction signs a GET against a single object key. Byte-range and
// conditional headers (Range, If-None-Match, ...) are added via Headers().
type GetObjectAction struct {
	actionBase
}

// GetObject builds a GetObjectAction for key. key must be non-empty.
func (b *Bucket) GetObject(creds *Credentials, key string) (*GetObjectAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	return &GetObjectAction{actionBase: newActionBase(b, creds, "GET", key)}, nil
}

// PutObjectAction signs a PUT that uploads key's full content. Since this
// module never hashes or reads the body, the payload is always signed as
// UNSIGNED-PAYLOAD (spec's Non-goal on streaming/body-signed uploads);
// Content-Type and any x-amz-* metadata headers are added via Headers().
type PutObjectAction struct {
	actionBase
}

// PutObject builds a PutObjectAction for key. key must be non-empty.
func (b *Bucket) PutObject(creds *Credentials, key string) (*PutObjectAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	return &PutObjectAction{actionBase: newActionBase(b, creds, "PUT", key)}, nil
}

// DeleteObjectAction signs a DELETE against a single object key.
type DeleteObjectAction struct {
	actionBase
}

// DeleteObject builds a DeleteObjectAction for key. key must be non-empty.
func (b *Bucket) DeleteObject(creds *Credentials, key string) (*DeleteObjectAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	return &DeleteObjectAction{actionBase: newActionBase(b, creds, "DELETE", key)}, nil
}
