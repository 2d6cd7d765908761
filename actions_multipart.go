package s3sig

import "strconv"

const (
	minPartNumber = 1
	maxPartNumber = 10000
)

func validatePartNumber(n int) error {
	if n < minPartNumber || n > maxPartNumber {
		return &ParamError{Param: "partNumber", Message: "must be between 1 and 10000"}
	}
	return nil
}

// CreateMultipartUploadAction signs a POST that starts a multipart upload
// for key. The response's UploadId (see CreateMultipartUploadOutput) must
// be threaded into every following UploadPart, ListParts,
// CompleteMultipartUpload or AbortMultipartUpload call.
type CreateMultipartUploadAction struct {
	actionBase
}

// CreateMultipartUpload builds a CreateMultipartUploadAction for key. key
// must be non-empty.
func (b *Bucket) CreateMultipartUpload(creds *Credentials, key string) (*CreateMultipartUploadAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	a := &CreateMultipartUploadAction{actionBase: newActionBase(b, creds, "POST", key)}
	a.query.Set("uploads", "")
	return a, nil
}

// UploadPartAction signs a PUT that uploads one part of an in-progress
// multipart upload.
type UploadPartAction struct {
	actionBase
	PartNumber int
}

// UploadPart builds an UploadPartAction for key, uploadID and partNumber.
// partNumber must be in [1, 10000].
func (b *Bucket) UploadPart(creds *Credentials, key, uploadID string, partNumber int) (*UploadPartAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	if uploadID == "" {
		return nil, &ParamError{Param: "uploadID", Message: "must not be empty"}
	}
	if err := validatePartNumber(partNumber); err != nil {
		return nil, err
	}
	a := &UploadPartAction{actionBase: newActionBase(b, creds, "PUT", key), PartNumber: partNumber}
	a.query.Set("partNumber", strconv.Itoa(partNumber))
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// ListPartsAction signs a GET that lists the parts already uploaded to an
// in-progress multipart upload.
type ListPartsAction struct {
	actionBase
}

// ListParts builds a ListPartsAction for key and uploadID.
func (b *Bucket) ListParts(creds *Credentials, key, uploadID string) (*ListPartsAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	if uploadID == "" {
		return nil, &ParamError{Param: "uploadID", Message: "must not be empty"}
	}
	a := &ListPartsAction{actionBase: newActionBase(b, creds, "GET", key)}
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// CompleteMultipartUploadAction signs a POST that assembles the uploaded
// parts of an in-progress multipart upload into the final object. The
// caller must send CompleteMultipartUploadBody(parts) as the request
// body; this module never sends request bodies itself.
type CompleteMultipartUploadAction struct {
	actionBase
}

// CompleteMultipartUpload builds a CompleteMultipartUploadAction for key
// and uploadID.
func (b *Bucket) CompleteMultipartUpload(creds *Credentials, key, uploadID string) (*CompleteMultipartUploadAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	if uploadID == "" {
		return nil, &ParamError{Param: "uploadID", Message: "must not be empty"}
	}
	a := &CompleteMultipartUploadAction{actionBase: newActionBase(b, creds, "POST", key)}
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// AbortMultipartUploadAction signs a DELETE that cancels an in-progress
// multipart upload and releases its uploaded parts.
type AbortMultipartUploadAction struct {
	actionBase
}

// AbortMultipartUpload builds an AbortMultipartUploadAction for key and
// uploadID.
func (b *Bucket) AbortMultipartUpload(creds *Credentials, key, uploadID string) (*AbortMultipartUploadAction, error) {
	if key == "" {
		return nil, &ParamError{Param: "key", Message: "must not be empty"}
	}
	if uploadID == "" {
		return nil, &ParamError{Param: "uploadID", Message: "must not be empty"}
	}
	a := &AbortMultipartUploadAction{actionBase: newActionBase(b, creds, "DELETE", key)}
	a.query.Set("uploadId", uploadID)
	return a, nil
}
