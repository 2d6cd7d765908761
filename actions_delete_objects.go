package s3sig

// DeleteObjectsAction signs a POST against the bucket root with the
// ?delete sub-resource, deleting up to 1000 keys in a single request. The
// caller must send DeleteObjectsBody(keys, quiet) as the request body;
// this module never sends request bodies itself.
type DeleteObjectsAction struct {
	actionBase
}

// DeleteObjects builds a DeleteObjectsAction against b.
func (b *Bucket) DeleteObjects(creds *Credentials) *DeleteObjectsAction {
	a := &DeleteObjectsAction{actionBase: newActionBase(b, creds, "POST", "")}
	a.query.Set("delete", "")
	return a
}
