// Package descriptor parses Cordova plugin descriptor files
// (cordova-plugin-*.xml) into Descriptor values. Only the parts the
// bootstrap module needs are read: the root id and version attributes and
// the js-module declarations that are direct children of the root.
package descriptor
