// Package apidoc reads the output of the apiDoc documentation extractor
// (api_data.json and api_project.json) into the records compiled by
// [apidocopenapi.Compile].
//
// Field groups keep the order in which apiDoc wrote them, because response
// groups are compiled in that order. Records are normalized on decode and
// validated by [LoadDir]; [Filter] narrows them down by group or version.
package apidoc
