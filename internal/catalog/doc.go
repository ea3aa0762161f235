// Package catalog shapes raw movie records into the views the app displays.
//
// Everything here is a pure function of its inputs: normalizing a movie whose
// fields may be overridden by an external-metadata block, resolving a
// playable trailer id, grouping movies into per-cinema sections, evaluating
// the user's filter and ordering cinemas and upcoming releases. Missing
// optional fields degrade to empty values and never to an error.
package catalog
