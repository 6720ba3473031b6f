// Package publish exports the showcase page as a standalone HTML file.
//
// An exported page carries no live session. Instead an inline script
// performs the image load transition in the browser, reading the classes
// the pane rendered into its data-* attributes:
//
//	data-loaded-class    class list the img takes once loaded
//	data-fallback-class  class list of the fallback graphic on error
//	data-fallback-text   text of the fallback graphic
//	data-skeleton        marks the placeholder removed on load
//
// A Publisher then writes the file to a directory or uploads it to S3.
package publish
