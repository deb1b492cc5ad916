// SPDX-License-Identifier: MIT
//
// Package document defines the serialized circuit document model and its JSON
// codec.
//
// # Why a format-agnostic document layer?
//
// Circuit documents are produced by many generations of the save routine, and
// older files are missing fields newer code takes for granted (layout records,
// label directions, title visibility). The types here capture exactly what a
// document says, including its absences (via pointer fields), and nothing
// about how the live model will interpret it. All backward-compatibility
// defaulting happens in the loader, against these records, so the rules live
// in one place instead of being smeared across element constructors.
//
// Field names follow the on-disk contract, historical misspellings included:
// `constructorParamaters` is what every existing document contains, so it is
// what this package reads.
package document
