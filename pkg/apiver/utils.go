/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package apiver

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// First code point of the private use range which marks versioned URIs.
//
// Compiled code appends Marker() of the version to the URI of versioned
// package namespaces.
const MarkerBase rune = 0xE000

var versionByName = func() map[string]Version {
	m := make(map[string]Version, version_count)
	for v := AllVersions; v < version_count; v++ {
		m[versionNames[v]] = v
	}
	return m
}()

// Parse version from its name, e.g. "FP_10_0" or "SWF_30"
func ParseVersion(name string) (Version, error) {
	if v, ok := versionByName[name]; ok {
		return v, nil
	}
	return AllVersions, ErrUnknownVersionName(name)
}

// Returns all concrete versions in release order
func Versions() []Version {
	vv := make([]Version, 0, version_count-1)
	for v := AllVersions + 1; v < version_count; v++ {
		vv = append(vv, v)
	}
	return vv
}

type swfTag struct {
	swf     uint8
	version Version
}

// Sorted by swf
var swfTags = []swfTag{
	{9, FP_9_0}, {10, FP_10_0}, {11, FP_10_2}, {12, SWF_12}, {13, SWF_13},
	{14, SWF_14}, {15, SWF_15}, {16, SWF_16}, {17, SWF_17}, {18, SWF_18},
	{19, SWF_19}, {20, SWF_20}, {21, SWF_21}, {22, SWF_22}, {23, SWF_23},
	{24, SWF_24}, {25, SWF_25}, {26, SWF_26}, {27, SWF_27}, {28, SWF_28},
	{29, SWF_29}, {30, SWF_30}, {31, SWF_31}, {32, SWF_32}, {33, SWF_33},
	{34, SWF_34}, {35, SWF_35}, {36, SWF_36}, {37, SWF_37}, {38, SWF_38},
	{39, SWF_39}, {40, SWF_40}, {41, SWF_41}, {42, SWF_42}, {43, SWF_43},
	{44, SWF_44}, {45, SWF_45}, {50, SWF_50},
}

// Returns the root version for content compiled for the specified SWF
// release. Releases older than 9 use FP_9_0; releases without own tag
// use the newest tag not newer than the release.
func FromSWFVersion(swf uint8) Version {
	idx, found := slices.BinarySearchFunc(swfTags, swf, func(t swfTag, swf uint8) int {
		return int(t.swf) - int(swf)
	})
	switch {
	case found:
		return swfTags[idx].version
	case idx == 0:
		return swfTags[0].version
	}
	return swfTags[idx-1].version
}

// Returns the private use code point which marks URI of this version
func (v Version) Marker() rune {
	return MarkerBase + rune(v)
}

// Returns the version marked by the code point, if any
func FromMarker(r rune) (Version, bool) {
	if r <= MarkerBase || r >= MarkerBase+rune(version_count) {
		return AllVersions, false
	}
	return Version(r - MarkerBase), true
}

// Splits URI with trailing version marker into bare URI and version.
//
// Returns ok == false and the unchanged URI if no marker is present.
func SplitVersionedURI(uri string) (bare string, v Version, ok bool) {
	r, size := utf8.DecodeLastRuneInString(uri)
	if size == 0 {
		return uri, AllVersions, false
	}
	if v, ok = FromMarker(r); !ok {
		return uri, AllVersions, false
	}
	return uri[:len(uri)-size], v, true
}
