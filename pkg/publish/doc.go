// Package publish renders weft pages to static HTML and writes the
// result to a destination store: a local directory or an S3 bucket.
package publish
