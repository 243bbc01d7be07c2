/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package apiver

import "strconv"

// API version of the content being executed.
//
// Versions are totally ordered by release; AllVersions sorts first and
// matches any other version.
type Version uint8

const (
	// Matches any version.
	//
	// Used for namespaces that are derived from already built names,
	// where the original version is not recoverable.
	AllVersions Version = iota

	AIR_1_0
	FP_9_0
	AIR_1_5
	AIR_1_5_1
	FP_10_0
	AIR_1_5_2
	FP_10_0_32
	AIR_1_5_3
	FP_10_1
	AIR_2_0
	AIR_2_5
	FP_10_2
	AIR_2_6
	SWF_12
	AIR_2_7
	SWF_13
	AIR_3_0
	SWF_14
	AIR_3_1
	SWF_15
	AIR_3_2
	SWF_16
	AIR_3_3
	SWF_17
	AIR_3_4
	SWF_18
	AIR_3_5
	SWF_19
	AIR_3_6
	SWF_20
	AIR_3_7
	SWF_21
	AIR_3_8
	SWF_22
	AIR_3_9
	SWF_23
	AIR_4_0
	SWF_24
	AIR_13_0
	SWF_25
	AIR_14_0
	SWF_26
	AIR_15_0
	SWF_27
	AIR_16_0
	SWF_28
	AIR_17_0
	SWF_29
	AIR_18_0
	SWF_30
	AIR_19_0
	SWF_31
	AIR_20_0
	SWF_32
	AIR_21_0
	SWF_33
	AIR_22_0
	SWF_34
	AIR_23_0
	SWF_35
	AIR_24_0
	SWF_36
	AIR_25_0
	SWF_37
	AIR_26_0
	SWF_38
	AIR_27_0
	SWF_39
	AIR_28_0
	SWF_40
	AIR_29_0
	SWF_41
	AIR_30_0
	SWF_42
	AIR_31_0
	SWF_43
	AIR_32_0
	SWF_44
	AIR_33_0
	SWF_45
	AIR_50_0
	SWF_50

	// Reserved for the runtime's own definitions.
	VM_INTERNAL

	version_count
)

// Returns is version concrete, i.e. not AllVersions and in known range
func (v Version) Concrete() bool {
	return v > AllVersions && v < version_count
}

// Returns true if versions are equal or one of them is AllVersions.
func (v Version) Matches(other Version) bool {
	return v == other || v == AllVersions || other == AllVersions
}

// Compare two versions by release order
func Compare(a, b Version) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Version) String() string {
	if v < version_count {
		return versionNames[v]
	}
	return "Version(" + strconv.Itoa(int(v)) + ")"
}
