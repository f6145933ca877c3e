// Package generator composes discovery, descriptor parsing and codegen into
// the single pass that produces cordova_plugins.js:
//
//	gate -> discover descriptors -> parse each -> merge -> render -> write
//
// Nothing is written unless every descriptor parses.
package generator
