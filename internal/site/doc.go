// Package site renders a member collection into a static directory site.
//
// A build writes:
//
//	members.json                 JSON array of members in collection order
//	index.html                   searchable listing
//	members/<slug>/index.html    one profile per member (optional)
//	static/...                   copy of the static asset directory
//	manifest.json                written files with sizes and hashes
//
// Templates named index.html and member.html are taken from a templates
// directory when present and from the built-in set otherwise. Every URL in
// the output is prefixed with the configured base path so the site can be
// served from a sub-directory.
package site
