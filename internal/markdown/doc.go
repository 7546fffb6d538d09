// Package markdown splits blog post front matter from markdown bodies and
// renders the bodies to HTML with goldmark.
package markdown
