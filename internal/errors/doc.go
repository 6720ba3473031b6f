// Package errors provides coded, actionable errors for displaycard.
//
// Each error has a code that maps to a registered template holding the
// category, a short message and a longer explanation:
//
//   - E1xx config: configuration files, .env and environment overrides
//   - E2xx catalog: the remote product catalog
//   - E3xx session: live sessions and the WebSocket protocol
//   - E4xx publish: static export targets
//
// # Usage
//
//	err := errors.New(errors.CodeCatalogStatus).
//	    WithDetail("GET https://dummyjson.com/products?limit=2 returned 503").
//	    WithSuggestion("Check catalog.base_url or retry later")
//
//	fmt.Println(err.Format())
//
// Errors support errors.Is against another *Error with the same code and
// errors.As to the underlying cause set with Wrap.
package errors
