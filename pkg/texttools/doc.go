// Package texttools holds the pure text transforms behind each sugoi tool.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/sugoi/pkg/texttools/b64]: base64 encode/decode over four alphabet/padding variants
//   - [github.com/germanamz/sugoi/pkg/texttools/digest]: message digests rendered as lowercase hex
//   - [github.com/germanamz/sugoi/pkg/texttools/baseconv]: arbitrary-precision numeral conversion between bases 2..36
//   - [github.com/germanamz/sugoi/pkg/texttools/charcount]: character, word, line and byte counts
//   - [github.com/germanamz/sugoi/pkg/texttools/regexgen]: regex inference from samples and sample generation from a regex
//   - [github.com/germanamz/sugoi/pkg/texttools/suddendeath]: the "突然の死" speech balloon generator
//
// No UI code is included. Every function is synchronous and side-effect free;
// the TUI under cmd/sugoi calls them directly from its update loop.
package texttools
