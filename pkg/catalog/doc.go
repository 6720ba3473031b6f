// Package catalog reads product listings from a dummyjson-compatible API
// and maps them to the previews the demo cards display.
package catalog
