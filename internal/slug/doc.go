// Package slug turns display titles into the lowercase, hyphen-delimited
// identifiers Plone uses for content ids.
package slug
