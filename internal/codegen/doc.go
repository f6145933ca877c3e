// Package codegen merges parsed plugin descriptors into the export list and
// version metadata of the Cordova bootstrap module, renders the
// cordova_plugins.js text and writes it to disk.
package codegen
