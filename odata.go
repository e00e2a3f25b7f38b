package splist

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ItemSet is a page (or, with Recursive set, the concatenation of all
// pages) of list items. Items are kept as raw JSON so callers can decode
// into their own field structs.
type ItemSet struct {
	Items []json.RawMessage

	// NextLink is the paging cursor of the last page fetched; empty when
	// the result set is exhausted.
	NextLink string
}

// Verbose OData envelope: {"d": {"results": [...], "__next": "..."}}
type verboseCollection struct {
	D struct {
		Results []json.RawMessage `json:"results"`
		Next    string            `json:"__next"`
	} `json:"d"`
}

// Flat envelope (minimalmetadata / nometadata): {"value": [...], "odata.nextLink": "..."}
type flatCollection struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"odata.nextLink"`
}

// decodeItemSet auto-detects the verbose vs flat collection envelope.
func decodeItemSet(data []byte) (ItemSet, error) {
	var verbose verboseCollection
	if err := json.Unmarshal(data, &verbose); err == nil &&
		(verbose.D.Results != nil || verbose.D.Next != "") {
		return ItemSet{Items: verbose.D.Results, NextLink: verbose.D.Next}, nil
	}

	var flat flatCollection
	if err := json.Unmarshal(data, &flat); err != nil {
		return ItemSet{}, fmt.Errorf("decode item collection: %w", err)
	}
	if flat.Value == nil {
		return ItemSet{}, fmt.Errorf("decode item collection: no results envelope in response")
	}
	return ItemSet{Items: flat.Value, NextLink: flat.NextLink}, nil
}

// decodeItem unwraps a single-item payload: the object under "d" in verbose
// mode, the object itself otherwise.
func decodeItem(data []byte) (json.RawMessage, error) {
	var envelope struct {
		D json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	if len(envelope.D) > 0 && !bytes.Equal(envelope.D, []byte("null")) {
		return envelope.D, nil
	}
	return json.RawMessage(data), nil
}

// contextinfo carries the digest in one of two places depending on the
// negotiated verbosity.
type contextInfo struct {
	D struct {
		GetContextWebInformation struct {
			FormDigestValue string `json:"FormDigestValue"`
		} `json:"GetContextWebInformation"`
	} `json:"d"`
	FormDigestValue string `json:"FormDigestValue"`
}

// extractDigest pulls the FormDigestValue out of a contextinfo response.
func extractDigest(data []byte) (string, error) {
	var info contextInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return "", &AuthError{Reason: "malformed contextinfo response", Err: err}
	}
	if v := info.D.GetContextWebInformation.FormDigestValue; v != "" {
		return v, nil
	}
	if info.FormDigestValue != "" {
		return info.FormDigestValue, nil
	}
	return "", &AuthError{Reason: "no FormDigestValue in contextinfo response"}
}
