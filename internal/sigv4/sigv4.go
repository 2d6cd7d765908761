// Package sigv4 derives SigV4 signing keys and signatures from a
// canonical request. It performs the HMAC-SHA256 chain described in
// docs.aws.amazon.com/general/latest/gr/sigv4-calculate-signature.html and
// nothing else: the canonical request itself is internal/canon's job.
//
// Grounded on github.com/minio/minio-go's request-signature-v4.go
// (getSigningKey / getStringToSignV4 / getSignature / getScope), using
// github.com/minio/sha256-simd in place of crypto/sha256 as the hash
// implementation, the same substitution minio-go itself vendors.
package sigv4

import (
	"crypto/hmac"
	"encoding/hex"
	"strings"
	"time"

	"github.com/minio/sha256-simd"

	"github.com/objstore/s3sig/internal/debug"
)

// Algorithm is the SigV4 algorithm name embedded in both the string to
// sign and the Authorization header.
const Algorithm = "AWS4-HMAC-SHA256"

const (
	amzDateLayout = "20060102T150405Z"
	dateLayout    = "20060102"
)

// AmzDate formats t as the amzdate string ("YYYYMMDDTHHMMSSZ") used in the
// string to sign, the X-Amz-Date header and the X-Amz-Date query param.
func AmzDate(t time.Time) string { return t.UTC().Format(amzDateLayout) }

// DateStamp formats t as the datestamp string ("YYYYMMDD") used to derive
// both the scope and the signing key.
func DateStamp(t time.Time) string { return t.UTC().Format(dateLayout) }

// Scope returns "datestamp/region/s3/aws4_request".
func Scope(t time.Time, region string) string {
	return strings.Join([]string{DateStamp(t), region, "s3", "aws4_request"}, "/")
}

// Credential returns "accessKeyID/scope", the value embedded in both the
// Authorization header's Credential= field and the X-Amz-Credential query
// parameter (where its "/" separators are percent-encoded like any other
// canonical query value).
func Credential(accessKeyID string, t time.Time, region string) string {
	return accessKeyID + "/" + Scope(t, region)
}

func hmacSum(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// SigningKey derives the HMAC-SHA256 signing key from a secret, date and
// region: HMAC(HMAC(HMAC(HMAC("AWS4"+secret, date), region), "s3"), "aws4_request").
func SigningKey(secret string, t time.Time, region string) []byte {
	kDate := hmacSum([]byte("AWS4"+secret), []byte(DateStamp(t)))
	kRegion := hmacSum(kDate, []byte(region))
	kService := hmacSum(kRegion, []byte("s3"))
	return hmacSum(kService, []byte("aws4_request"))
}

// StringToSign builds the SigV4 string-to-sign from a timestamp, scope and
// canonical request.
func StringToSign(t time.Time, scope, canonicalRequest string) string {
	sum := sha256.Sum256([]byte(canonicalRequest))
	sts := strings.Join([]string{
		Algorithm,
		AmzDate(t),
		scope,
		hex.EncodeToString(sum[:]),
	}, "\n")
	debug.Log("string to sign:\n%s", sts)
	return sts
}

// Sign computes the final lowercase-hex signature from a signing key and a
// string to sign.
func Sign(signingKey []byte, stringToSign string) string {
	return hex.EncodeToString(hmacSum(signingKey, []byte(stringToSign)))
}
