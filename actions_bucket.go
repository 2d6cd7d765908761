package s3sig

// CreateBucketAction signs a PUT to the bucket root, creating it.
type CreateBucketAction struct {
	actionBase
}

// CreateBucket builds a CreateBucketAction against b.
func (b *Bucket) CreateBucket(creds *Credentials) *CreateBucketAction {
	return &CreateBucketAction{actionBase: newActionBase(b, creds, "PUT", "")}
}

// DeleteBucketAction signs a DELETE to the bucket root.
type DeleteBucketAction struct {
	actionBase
}

// DeleteBucket builds a DeleteBucketAction against b.
func (b *Bucket) DeleteBucket(creds *Credentials) *DeleteBucketAction {
	return &DeleteBucketAction{actionBase: newActionBase(b, creds, "DELETE", "")}
}

// HeadBucketAction signs a HEAD to the bucket root, a cheap existence and
// permission check.
type HeadBucketAction struct {
	actionBase
}

// HeadBucket builds a HeadBucketAction against b.
func (b *Bucket) HeadBucket(creds *Credentials) *HeadBucketAction {
	return &HeadBucketAction{actionBase: newActionBase(b, creds, "HEAD", "")}
}
