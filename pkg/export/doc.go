// Package export extracts usernames from Instagram's "Download your
// information" HTML files.
//
// An export lists one account per entry. Depending on the file and the
// export vintage the username is carried by
//
//   - an anchor whose href ends in "_u/<username>",
//   - an anchor pointing at instagram.com whose text is the username, or
//   - an <h2> heading holding the username.
//
// Two backends walk the document: CSS selectors through goquery (the
// default) and XPath through htmlquery. Both feed the same rules, so they
// return the same set for the same input.
//
// Malformed markup never fails extraction; whatever matches is returned.
// If Instagram changes the layout the result is silently smaller, so callers
// should treat an empty set from a non-empty file as suspicious.
package export
