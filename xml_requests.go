package s3sig

import (
	"encoding/xml"
	"sort"
)

// CompletedPart identifies one uploaded part by number and the ETag S3
// returned for it, the pair CompleteMultipartUpload needs to assemble the
// final object.
type CompletedPart struct {
	PartNumber int
	ETag       string
}

// rawText wraps a string so encoding/xml writes it into its enclosing
// element verbatim via the ",innerxml" tag instead of running it through
// the usual character-data escaper. An ETag always carries its own
// literal double quotes (e.g. `"etag1"`); the escaper would otherwise
// turn them into "&#34;", which is still well-formed XML but not the
// exact bytes S3's own CompleteMultipartUpload request body uses.
type rawText struct {
	Text string `xml:",innerxml"`
}

// CompleteMultipartUploadBody builds the XML request body a
// CompleteMultipartUploadAction must be sent with. parts are reordered by
// ascending PartNumber regardless of the order passed in, since S3
// rejects a part list that isn't strictly ascending.
func CompleteMultipartUploadBody(parts []CompletedPart) ([]byte, error) {
	if len(parts) == 0 {
		return nil, &ParamError{Param: "parts", Message: "must contain at least one part"}
	}

	sorted := make([]CompletedPart, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartNumber < sorted[j].PartNumber })

	type xmlPart struct {
		PartNumber int     `xml:"PartNumber"`
		ETag       rawText `xml:"ETag"`
	}
	type xmlBody struct {
		XMLName xml.Name  `xml:"CompleteMultipartUpload"`
		Parts   []xmlPart `xml:"Part"`
	}

	body := xmlBody{Parts: make([]xmlPart, 0, len(sorted))}
	for _, p := range sorted {
		body.Parts = append(body.Parts, xmlPart{PartNumber: p.PartNumber, ETag: rawText{Text: p.ETag}})
	}

	out, err := xml.Marshal(body)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// DeleteObjectsBody builds the XML request body a DeleteObjectsAction must
// be sent with, deleting every key in keys. When quiet is true, S3 omits
// a <Deleted> entry for each successfully deleted key from the response
// and reports only errors.
func DeleteObjectsBody(keys []string, quiet bool) ([]byte, error) {
	if len(keys) == 0 {
		return nil, &ParamError{Param: "keys", Message: "must contain at least one key"}
	}
	if len(keys) > 1000 {
		return nil, &ParamError{Param: "keys", Message: "must not exceed 1000 keys per request"}
	}

	type xmlObject struct {
		Key string `xml:"Key"`
	}
	type xmlBody struct {
		XMLName xml.Name    `xml:"Delete"`
		Objects []xmlObject `xml:"Object"`
		Quiet   bool        `xml:"Quiet,omitempty"`
	}

	body := xmlBody{Quiet: quiet, Objects: make([]xmlObject, 0, len(keys))}
	for _, k := range keys {
		body.Objects = append(body.Objects, xmlObject{Key: k})
	}

	out, err := xml.Marshal(body)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
