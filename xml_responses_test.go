package s3sig

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseListObjectsV2OutputDecodesUrlEncoding(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
	<Name>examplebucket</Name>
	<Prefix>photos%2F</Prefix>
	<KeyCount>2</KeyCount>
	<MaxKeys>1000</MaxKeys>
	<IsTruncated>false</IsTruncated>
	<Contents>
		<Key>photos%2Fa%20b.jpg</Key>
		<LastModified>2013-05-24T00:00:00.000Z</LastModified>
		<ETag>&quot;abc123&quot;</ETag>
		<Size>1024</Size>
		<StorageClass>STANDARD</StorageClass>
	</Contents>
	<CommonPrefixes>
		<Prefix>photos%2Fsub%2F</Prefix>
	</CommonPrefixes>
</ListBucketResult>`)

	out, err := ParseListObjectsV2Output(body)
	if err != nil {
		t.Fatal(err)
	}

	if out.Prefix != "photos/" {
		t.Errorf("Prefix = %q, want %q", out.Prefix, "photos/")
	}
	if len(out.Contents) != 1 {
		t.Fatalf("len(Contents) = %d, want 1", len(out.Contents))
	}
	if got, want := out.Contents[0].Key, "photos/a b.jpg"; got != want {
		t.Errorf("Contents[0].Key = %q, want %q", got, want)
	}
	wantTime, _ := time.Parse(time.RFC3339, "2013-05-24T00:00:00.000Z")
	if !out.Contents[0].LastModified.Equal(wantTime) {
		t.Errorf("Contents[0].LastModified = %v, want %v", out.Contents[0].LastModified, wantTime)
	}
	if len(out.CommonPrefixes) != 1 || out.CommonPrefixes[0] != "photos/sub/" {
		t.Errorf("CommonPrefixes = %v, want [photos/sub/]", out.CommonPrefixes)
	}
}

func TestParseListObjectsV2OutputRejectsMalformedLastModified(t *testing.T) {
	body := []byte(`<ListBucketResult><Contents><Key>k</Key><LastModified>not-a-time</LastModified></Contents></ListBucketResult>`)
	if _, err := ParseListObjectsV2Output(body); err == nil {
		t.Error("expected a ParseError for a malformed LastModified timestamp")
	}
}

func TestParseCreateMultipartUploadOutputRequiresUploadId(t *testing.T) {
	body := []byte(`<InitiateMultipartUploadResult><Bucket>b</Bucket><Key>k</Key></InitiateMultipartUploadResult>`)
	if _, err := ParseCreateMultipartUploadOutput(body); err == nil {
		t.Error("expected a ParseError for a missing UploadId")
	}

	body = []byte(`<InitiateMultipartUploadResult><Bucket>b</Bucket><Key>k</Key><UploadId>up-1</UploadId></InitiateMultipartUploadResult>`)
	out, err := ParseCreateMultipartUploadOutput(body)
	if err != nil {
		t.Fatal(err)
	}
	if out.UploadID != "up-1" {
		t.Errorf("UploadID = %q, want up-1", out.UploadID)
	}
}

func TestParseListPartsOutput(t *testing.T) {
	body := []byte(`<ListPartsResult>
	<Bucket>b</Bucket>
	<Key>k</Key>
	<UploadId>up-1</UploadId>
	<MaxParts>1000</MaxParts>
	<IsTruncated>false</IsTruncated>
	<Part>
		<PartNumber>1</PartNumber>
		<LastModified>2013-05-24T00:00:00.000Z</LastModified>
		<ETag>"etag1"</ETag>
		<Size>5242880</Size>
	</Part>
</ListPartsResult>`)

	out, err := ParseListPartsOutput(body)
	if err != nil {
		t.Fatal(err)
	}

	wantTime, _ := time.Parse(time.RFC3339, "2013-05-24T00:00:00.000Z")
	want := &ListPartsOutput{
		Bucket:      "b",
		Key:         "k",
		UploadID:    "up-1",
		MaxParts:    1000,
		IsTruncated: false,
		Parts: []Part{
			{PartNumber: 1, LastModified: wantTime, ETag: `"etag1"`, Size: 5242880},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ParseListPartsOutput() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeleteObjectsOutput(t *testing.T) {
	body := []byte(`<DeleteResult>
	<Deleted><Key>a.txt</Key></Deleted>
	<Error><Key>b.txt</Key><Code>AccessDenied</Code><Message>denied</Message></Error>
</DeleteResult>`)

	out, err := ParseDeleteObjectsOutput(body)
	if err != nil {
		t.Fatal(err)
	}

	want := &DeleteObjectsOutput{
		Deleted: []DeletedObject{{Key: "a.txt"}},
		Errors:  []DeleteError{{Key: "b.txt", Code: "AccessDenied", Message: "denied"}},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ParseDeleteObjectsOutput() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeleteObjectsOutputCarriesVersionID(t *testing.T) {
	body := []byte(`<DeleteResult>
	<Deleted><Key>a.txt</Key><VersionId>v1</VersionId></Deleted>
</DeleteResult>`)

	out, err := ParseDeleteObjectsOutput(body)
	if err != nil {
		t.Fatal(err)
	}

	want := &DeleteObjectsOutput{
		Deleted: []DeletedObject{{Key: "a.txt", VersionID: "v1"}},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ParseDeleteObjectsOutput() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrorResponse(t *testing.T) {
	body := []byte(`<Error>
	<Code>NoSuchKey</Code>
	<Message>The specified key does not exist.</Message>
	<Resource>/mybucket/myfoto.jpg</Resource>
	<RequestId>4442587FB7D0A2F9</RequestId>
</Error>`)

	errResp, err := ParseErrorResponse(body)
	if err != nil {
		t.Fatal(err)
	}
	if errResp.Code != "NoSuchKey" {
		t.Errorf("Code = %q, want NoSuchKey", errResp.Code)
	}
	if errResp.Error() != "s3sig: NoSuchKey: The specified key does not exist." {
		t.Errorf("Error() = %q", errResp.Error())
	}
}

func TestParseErrorResponseRequiresCode(t *testing.T) {
	body := []byte(`<Error><Message>oops</Message></Error>`)
	if _, err := ParseErrorResponse(body); err == nil {
		t.Error("expected a ParseError for a missing Code")
	}
}
