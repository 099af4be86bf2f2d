// Package rewrite converts @MainActor async setUp/tearDown overrides in
// XCTest files into synchronous overrides wrapped in MainActor.assumeIsolated.
//
// Matching is plain regex with lazy multi-line bodies, not a Swift parser.
// A body whose nested block closes before the override's own closing brace
// can be truncated, and spacing the patterns do not tolerate leaves a block
// untouched without an error.
package rewrite

import (
	"regexp"
	"strings"
)

// A rule pairs a block pattern with the rewrite applied to its captured body.
// The body is trimmed of surrounding whitespace before being spliced into the
// replacement; its internal indentation is preserved verbatim.
type rule struct {
	pattern *regexp.Regexp
	rewrite func(body string) string
}

var (
	// setUpPattern matches an @MainActor async throws setUp override whose
	// body starts with the super call, capturing everything after it up to
	// the first closing brace.
	setUpPattern = regexp.MustCompile(
		`(?s)@MainActor\s+override func setUp\(\) async throws \{\s*try await super\.setUp\(\)(.*?)\}`)

	// tearDownPattern is the mirror image: the body is everything before the
	// trailing super call.
	tearDownPattern = regexp.MustCompile(
		`(?s)@MainActor\s+override func tearDown\(\) async throws \{(.*?)try await super\.tearDown\(\)\s*\}`)
)

var rules = []rule{
	{
		pattern: setUpPattern,
		rewrite: func(body string) string {
			return "override func setUp() {\n" +
				"        super.setUp()\n" +
				"        MainActor.assumeIsolated {\n" +
				body + "\n" +
				"        }\n" +
				"    }"
		},
	},
	{
		pattern: tearDownPattern,
		rewrite: func(body string) string {
			return "override func tearDown() {\n" +
				"        MainActor.assumeIsolated {\n" +
				body + "\n" +
				"        }\n" +
				"        super.tearDown()\n" +
				"    }"
		},
	},
}

// Transform applies both rewrite passes to content and returns the result.
// Substitution is global, so every matching block in the content is
// rewritten. Content containing neither pattern comes back unchanged, and
// all text outside matched blocks is preserved byte for byte.
func Transform(content string) string {
	for _, r := range rules {
		content = r.pattern.ReplaceAllStringFunc(content, func(block string) string {
			m := r.pattern.FindStringSubmatch(block)
			return r.rewrite(strings.TrimSpace(m[1]))
		})
	}
	return content
}
