package s3sig

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"time"

	intErrors "github.com/objstore/s3sig/internal/errors"
)

// urlDecode percent-decodes a response field S3 encoded because the
// request asked for encoding-type=url. PathUnescape, not QueryUnescape,
// since S3's url encoding-type never turns "+" into a space.
func urlDecode(s string) string {
	if s == "" {
		return s
	}
	d, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return d
}

// Object is one entry of a ListObjectsV2Output's Contents.
type Object struct {
	Key          string
	LastModified time.Time
	ETag         string
	Size         int64
	StorageClass string
}

// ListObjectsV2Output is the parsed body of a ListObjectsV2 response.
type ListObjectsV2Output struct {
	Name                  string
	Prefix                string
	Delimiter             string
	MaxKeys               int
	KeyCount              int
	IsTruncated           bool
	Contents              []Object
	CommonPrefixes        []string
	ContinuationToken     string
	NextContinuationToken string
	StartAfter            string
}

type xmlCommonPrefix struct {
	Prefix string `xml:"Prefix"`
}

type xmlContents struct {
	Key          string `xml:"Key"`
	LastModified string `xml:"LastModified"`
	ETag         string `xml:"ETag"`
	Size         int64  `xml:"Size"`
	StorageClass string `xml:"StorageClass"`
}

type xmlListBucketResult struct {
	XMLName               xml.Name          `xml:"ListBucketResult"`
	Name                  string            `xml:"Name"`
	Prefix                string            `xml:"Prefix"`
	Delimiter             string            `xml:"Delimiter"`
	MaxKeys               int               `xml:"MaxKeys"`
	KeyCount              int               `xml:"KeyCount"`
	IsTruncated           bool              `xml:"IsTruncated"`
	Contents              []xmlContents     `xml:"Contents"`
	CommonPrefixes        []xmlCommonPrefix `xml:"CommonPrefixes"`
	ContinuationToken     string            `xml:"ContinuationToken"`
	NextContinuationToken string            `xml:"NextContinuationToken"`
	StartAfter            string            `xml:"StartAfter"`
}

// ParseListObjectsV2Output parses a ListObjectsV2 response body, percent-
// decoding the fields encoding-type=url affects (Key, Prefix, Delimiter,
// StartAfter, ContinuationToken, NextContinuationToken and CommonPrefixes'
// Prefix all carry through the same encoding, since every
// ListObjectsV2Action this module builds requests encoding-type=url).
func ParseListObjectsV2Output(body []byte) (*ListObjectsV2Output, error) {
	var raw xmlListBucketResult
	if err := xml.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Element: "ListBucketResult", Offset: -1, Message: err.Error(), Cause: intErrors.Wrap(err, "unmarshal ListBucketResult")}
	}

	out := &ListObjectsV2Output{
		Name:                  raw.Name,
		Prefix:                urlDecode(raw.Prefix),
		Delimiter:             urlDecode(raw.Delimiter),
		MaxKeys:               raw.MaxKeys,
		KeyCount:              raw.KeyCount,
		IsTruncated:           raw.IsTruncated,
		ContinuationToken:     urlDecode(raw.ContinuationToken),
		NextContinuationToken: urlDecode(raw.NextContinuationToken),
		StartAfter:            urlDecode(raw.StartAfter),
	}

	for _, c := range raw.Contents {
		lm, err := time.Parse(time.RFC3339, c.LastModified)
		if err != nil {
			return nil, &ParseError{Element: "Contents.LastModified", Offset: -1, Message: err.Error()}
		}
		out.Contents = append(out.Contents, Object{
			Key:          urlDecode(c.Key),
			LastModified: lm,
			ETag:         c.ETag,
			Size:         c.Size,
			StorageClass: c.StorageClass,
		})
	}

	for _, p := range raw.CommonPrefixes {
		out.CommonPrefixes = append(out.CommonPrefixes, urlDecode(p.Prefix))
	}

	return out, nil
}

// CreateMultipartUploadOutput is the parsed body of a
// CreateMultipartUpload response.
type CreateMultipartUploadOutput struct {
	Bucket   string
	Key      string
	UploadID string
}

// ParseCreateMultipartUploadOutput parses a CreateMultipartUpload response
// body. UploadID is required; its absence is the one malformed-body case
// worth distinguishing, since every later multipart call depends on it.
func ParseCreateMultipartUploadOutput(body []byte) (*CreateMultipartUploadOutput, error) {
	type xmlResult struct {
		XMLName  xml.Name `xml:"InitiateMultipartUploadResult"`
		Bucket   string   `xml:"Bucket"`
		Key      string   `xml:"Key"`
		UploadID string   `xml:"UploadId"`
	}

	var raw xmlResult
	if err := xml.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Element: "InitiateMultipartUploadResult", Offset: -1, Message: err.Error(), Cause: intErrors.Wrap(err, "unmarshal InitiateMultipartUploadResult")}
	}
	if raw.UploadID == "" {
		return nil, &ParseError{Element: "UploadId", Offset: -1, Message: "missing required element"}
	}

	return &CreateMultipartUploadOutput{Bucket: raw.Bucket, Key: raw.Key, UploadID: raw.UploadID}, nil
}

// Part is one entry of a ListPartsOutput.
type Part struct {
	PartNumber   int
	LastModified time.Time
	ETag         string
	Size         int64
}

// ListPartsOutput is the parsed body of a ListParts response.
type ListPartsOutput struct {
	Bucket               string
	Key                  string
	UploadID             string
	PartNumberMarker     int
	NextPartNumberMarker int
	MaxParts             int
	IsTruncated          bool
	Parts                []Part
}

// ParseListPartsOutput parses a ListParts response body.
func ParseListPartsOutput(body []byte) (*ListPartsOutput, error) {
	type xmlPart struct {
		PartNumber   int    `xml:"PartNumber"`
		LastModified string `xml:"LastModified"`
		ETag         string `xml:"ETag"`
		Size         int64  `xml:"Size"`
	}
	type xmlResult struct {
		XMLName              xml.Name  `xml:"ListPartsResult"`
		Bucket               string    `xml:"Bucket"`
		Key                  string    `xml:"Key"`
		UploadID             string    `xml:"UploadId"`
		PartNumberMarker     int       `xml:"PartNumberMarker"`
		NextPartNumberMarker int       `xml:"NextPartNumberMarker"`
		MaxParts             int       `xml:"MaxParts"`
		IsTruncated          bool      `xml:"IsTruncated"`
		Parts                []xmlPart `xml:"Part"`
	}

	var raw xmlResult
	if err := xml.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Element: "ListPartsResult", Offset: -1, Message: err.Error(), Cause: intErrors.Wrap(err, "unmarshal ListPartsResult")}
	}
	if raw.UploadID == "" {
		return nil, &ParseError{Element: "UploadId", Offset: -1, Message: "missing required element"}
	}

	out := &ListPartsOutput{
		Bucket:               raw.Bucket,
		Key:                  raw.Key,
		UploadID:             raw.UploadID,
		PartNumberMarker:     raw.PartNumberMarker,
		NextPartNumberMarker: raw.NextPartNumberMarker,
		MaxParts:             raw.MaxParts,
		IsTruncated:          raw.IsTruncated,
	}
	for _, p := range raw.Parts {
		lm, err := time.Parse(time.RFC3339, p.LastModified)
		if err != nil {
			return nil, &ParseError{Element: "Part.LastModified", Offset: -1, Message: err.Error()}
		}
		out.Parts = append(out.Parts, Part{PartNumber: p.PartNumber, LastModified: lm, ETag: p.ETag, Size: p.Size})
	}

	return out, nil
}

// CompleteMultipartUploadOutput is the parsed body of a
// CompleteMultipartUpload response.
type CompleteMultipartUploadOutput struct {
	Location string
	Bucket   string
	Key      string
	ETag     string
}

// ParseCompleteMultipartUploadOutput parses a CompleteMultipartUpload
// response body.
func ParseCompleteMultipartUploadOutput(body []byte) (*CompleteMultipartUploadOutput, error) {
	type xmlResult struct {
		XMLName  xml.Name `xml:"CompleteMultipartUploadResult"`
		Location string   `xml:"Location"`
		Bucket   string   `xml:"Bucket"`
		Key      string   `xml:"Key"`
		ETag     string   `xml:"ETag"`
	}

	var raw xmlResult
	if err := xml.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Element: "CompleteMultipartUploadResult", Offset: -1, Message: err.Error(), Cause: intErrors.Wrap(err, "unmarshal CompleteMultipartUploadResult")}
	}

	return &CompleteMultipartUploadOutput{Location: raw.Location, Bucket: raw.Bucket, Key: raw.Key, ETag: raw.ETag}, nil
}

// DeletedObject is one successfully deleted key in a DeleteObjectsOutput.
// VersionID is only present when DeleteObjects targeted a versioned
// bucket; it is "" otherwise.
type DeletedObject struct {
	Key       string
	VersionID string
}

// DeleteError is one key DeleteObjects failed to delete.
type DeleteError struct {
	Key     string
	Code    string
	Message string
}

// DeleteObjectsOutput is the parsed body of a DeleteObjects response.
type DeleteObjectsOutput struct {
	Deleted []DeletedObject
	Errors  []DeleteError
}

// ParseDeleteObjectsOutput parses a DeleteObjects response body. In quiet
// mode Deleted is always empty; Errors is populated regardless of mode.
func ParseDeleteObjectsOutput(body []byte) (*DeleteObjectsOutput, error) {
	type xmlDeleted struct {
		Key       string `xml:"Key"`
		VersionID string `xml:"VersionId"`
	}
	type xmlError struct {
		Key     string `xml:"Key"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	}
	type xmlResult struct {
		XMLName xml.Name     `xml:"DeleteResult"`
		Deleted []xmlDeleted `xml:"Deleted"`
		Errors  []xmlError   `xml:"Error"`
	}

	var raw xmlResult
	if err := xml.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Element: "DeleteResult", Offset: -1, Message: err.Error(), Cause: intErrors.Wrap(err, "unmarshal DeleteResult")}
	}

	out := &DeleteObjectsOutput{}
	for _, d := range raw.Deleted {
		out.Deleted = append(out.Deleted, DeletedObject{Key: d.Key, VersionID: d.VersionID})
	}
	for _, e := range raw.Errors {
		out.Errors = append(out.Errors, DeleteError{Key: e.Key, Code: e.Code, Message: e.Message})
	}

	return out, nil
}

// ErrorResponse is the parsed body of an S3 error response, the XML
// document S3 sends alongside a non-2xx status. Grounded on the error-
// classification split restic's s3 backend relies on (isAccessDenied /
// IsNotExist checks against a minio-go ErrorResponse.Code) to decide
// whether a failure is worth retrying.
type ErrorResponse struct {
	Code      string
	Message   string
	Resource  string
	RequestID string
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("s3sig: %s: %s", e.Code, e.Message)
}

// ParseErrorResponse parses an S3 error response body. Code is required.
func ParseErrorResponse(body []byte) (*ErrorResponse, error) {
	type xmlErr struct {
		XMLName   xml.Name `xml:"Error"`
		Code      string   `xml:"Code"`
		Message   string   `xml:"Message"`
		Resource  string   `xml:"Resource"`
		RequestID string   `xml:"RequestId"`
	}

	var raw xmlErr
	if err := xml.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Element: "Error", Offset: -1, Message: err.Error(), Cause: intErrors.Wrap(err, "unmarshal Error")}
	}
	if raw.Code == "" {
		return nil, &ParseError{Element: "Code", Offset: -1, Message: "missing required element"}
	}

	return &ErrorResponse{Code: raw.Code, Message: raw.Message, Resource: raw.Resource, RequestID: raw.RequestID}, nil
}
