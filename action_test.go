package s3sig

import (
	"errors"
	"testing"
	"time"
)

func testBucket(t *testing.T) *Bucket {
	t.Helper()
	b, err := NewBucket("https://s3.amazonaws.com", VirtualHost, "examplebucket", "us-east-1")
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestObjectActionsRejectEmptyKey(t *testing.T) {
	b := testBucket(t)
	creds := NewCredentials("AKIA", "secret")

	cases := []func() error{
		func() error { _, err := b.HeadObject(creds, ""); return err },
		func() error { _, err := b.GetObject(creds, ""); return err },
		func() error { _, err := b.PutObject(creds, ""); return err },
		func() error { _, err := b.DeleteObject(creds, ""); return err },
		func() error { _, err := b.CreateMultipartUpload(creds, ""); return err },
		func() error { _, err := b.UploadPart(creds, "", "upload-id", 1); return err },
		func() error { _, err := b.ListParts(creds, "", "upload-id"); return err },
		func() error { _, err := b.CompleteMultipartUpload(creds, "", "upload-id"); return err },
		func() error { _, err := b.AbortMultipartUpload(creds, "", "upload-id"); return err },
	}
	for i, fn := range cases {
		err := fn()
		var pe *ParamError
		if !errors.As(err, &pe) {
			t.Errorf("case %d: error = %v, want *ParamError", i, err)
		}
	}
}

func TestUploadPartRejectsOutOfRangePartNumber(t *testing.T) {
	b := testBucket(t)
	creds := NewCredentials("AKIA", "secret")

	for _, n := range []int{0, -1, 10001} {
		if _, err := b.UploadPart(creds, "key", "upload-id", n); err == nil {
			t.Errorf("UploadPart partNumber=%d succeeded, want error", n)
		}
	}
	if _, err := b.UploadPart(creds, "key", "upload-id", 1); err != nil {
		t.Errorf("UploadPart partNumber=1: %v", err)
	}
	if _, err := b.UploadPart(creds, "key", "upload-id", 10000); err != nil {
		t.Errorf("UploadPart partNumber=10000: %v", err)
	}
}

func TestUploadPartSetsQueryParams(t *testing.T) {
	b := testBucket(t)
	creds := NewCredentials("AKIA", "secret")

	a, err := b.UploadPart(creds, "key", "abc123", 7)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := a.Query().Get("partNumber"); got != "7" {
		t.Errorf("partNumber query param = %q, want %q", got, "7")
	}
	if got, _ := a.Query().Get("uploadId"); got != "abc123" {
		t.Errorf("uploadId query param = %q, want %q", got, "abc123")
	}
}

func TestListObjectsV2SettersPopulateQuery(t *testing.T) {
	b := testBucket(t)
	a := b.ListObjectsV2(nil).Prefix("photos/").Delimiter("/").ContinuationToken("tok").StartAfter("photos/a.jpg")

	want := map[string]string{
		"list-type":          "2",
		"encoding-type":      "url",
		"prefix":             "photos/",
		"delimiter":          "/",
		"continuation-token": "tok",
		"start-after":        "photos/a.jpg",
	}
	for k, v := range want {
		if got, ok := a.Query().Get(k); !ok || got != v {
			t.Errorf("query[%q] = %q, %v, want %q", k, got, ok, v)
		}
	}
}

func TestListObjectsV2MaxKeysValidation(t *testing.T) {
	b := testBucket(t)
	a := b.ListObjectsV2(nil)

	if _, err := a.MaxKeys(0); err == nil {
		t.Error("MaxKeys(0) succeeded, want error")
	}
	if _, err := a.MaxKeys(1001); err == nil {
		t.Error("MaxKeys(1001) succeeded, want error")
	}
	if _, err := a.MaxKeys(500); err != nil {
		t.Errorf("MaxKeys(500): %v", err)
	}
	if got, _ := a.Query().Get("max-keys"); got != "500" {
		t.Errorf("max-keys query param = %q, want 500", got)
	}
}

func TestDeleteObjectsSetsDeleteSubresource(t *testing.T) {
	b := testBucket(t)
	a := b.DeleteObjects(nil)
	if got, ok := a.Query().Get("delete"); !ok || got != "" {
		t.Errorf("delete query param = %q, %v, want empty present", got, ok)
	}
	if a.Method() != "POST" {
		t.Errorf("method = %q, want POST", a.Method())
	}
}

func TestSigningNeverMutatesActionsQueryMap(t *testing.T) {
	b := testBucket(t)
	creds := NewCredentials("AKIA", "secret")
	a, err := b.GetObject(creds, "key")
	if err != nil {
		t.Fatal(err)
	}
	a.Query().Set("versionId", "v1")

	if _, err := a.Sign(time.Minute); err != nil {
		t.Fatal(err)
	}

	if _, ok := a.Query().Get("X-Amz-Signature"); ok {
		t.Error("Sign() leaked X-Amz-Signature into the action's own Query() map")
	}
	if got, ok := a.Query().Get("versionId"); !ok || got != "v1" {
		t.Errorf("versionId query param = %q, %v, want %q, true", got, ok, "v1")
	}
}

func TestListObjectsV2SettersReturnSameAction(t *testing.T) {
	b := testBucket(t)
	a := b.ListObjectsV2(nil)
	if got := a.Prefix("x"); got != a {
		t.Error("Prefix() should return the same *ListObjectsV2Action for chaining")
	}
}
