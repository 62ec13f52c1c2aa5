package md2mindmap

import "regexp"

// Protected-span patterns. A plugin substitution only runs on text
// outside the spans its protection pattern matches, so a naive rewrite
// can never corrupt the literal contents of a code fence or a math
// expression. HTML code elements are included because earlier plugins in
// the pipeline may already have rewritten backtick spans into markup.
var (
	// Code spans, raw and already-marked.
	codeSpans = `(?s)` +
		"```.*?```|~~~.*?~~~|" + // fenced blocks
		"`[^`\n]*`|" + // inline code
		`<pre>.*?</pre>|<code[^>]*>.*?</code>` // marked code

	// Math spans, block form first so $$...$$ is not eaten as two $...$.
	mathSpans = `\$\$[^$]+\$\$|\$[^$\n]+\$`

	// protectCodeAndMath guards both families: used by plugins that
	// rewrite plain prose (emoji, links).
	protectCodeAndMath = regexp.MustCompile(codeSpans + `|` + mathSpans)

	// protectMath guards math only: used by the code plugin, whose own
	// substitutions target code spans.
	protectMath = regexp.MustCompile(`(?s)` + mathSpans)

	// protectCode guards code only: used by the math plugin.
	protectCode = regexp.MustCompile(codeSpans)

	// mathSpanPattern matches one math span, block form preferred.
	mathSpanPattern = regexp.MustCompile(mathSpans)
)

// rewriteOutside applies fn to every stretch of content not claimed by a
// protected span, leaving the spans byte-identical.
func rewriteOutside(content string, protect *regexp.Regexp, fn func(string) string) string {
	matches := protect.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return fn(content)
	}

	var out []byte
	prev := 0
	for _, m := range matches {
		out = append(out, fn(content[prev:m[0]])...)
		out = append(out, content[m[0]:m[1]]...)
		prev = m[1]
	}
	out = append(out, fn(content[prev:])...)
	return string(out)
}
