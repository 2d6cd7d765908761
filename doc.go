// Package s3sig builds and signs S3 HTTP API requests using AWS Signature
// Version 4, without performing any network I/O itself.
//
// A Bucket describes where an object store lives (endpoint, addressing
// style, name, region); its factory methods (GetObject, PutObject,
// ListObjectsV2, the multipart-upload set, ...) build Action values for
// the operations this module supports. Every Action can be turned into a
// presigned URL via Sign/SignWithTime, or into a method, URL and header
// set carrying an Authorization header via SignHeaders/SignHeadersWithTime.
// Passing nil Credentials to a Bucket factory method produces an
// anonymous Action whose Sign/SignHeaders calls perform no signing at all.
//
// This module never reads credentials from the environment, a config
// file or an instance-metadata service, never retries or rate-limits,
// and never reads or hashes a request body: every request is signed with
// the UNSIGNED-PAYLOAD content hash. Sourcing credentials, performing the
// HTTP round trip and handling retries are all the caller's
// responsibility.
package s3sig
