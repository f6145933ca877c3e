// Package discovery decides whether a project uses the Cordova bridge at all
// and locates the plugin descriptor files (cordova-plugin-*.xml) whose
// declarations end up in the generated cordova_plugins.js.
package discovery
