// Package list provides the "cordovagen list" command, which shows the plugin
// descriptors and export records a generation run would use.
package list
