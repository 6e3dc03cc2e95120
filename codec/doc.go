// Package codec provides named formbind.Transform implementations and a
// registry so settings files can refer to them by name.
//
// Read converts what a control shows into what the model stores; Write does
// the reverse. Input that cannot be converted yet (a half-typed number or
// date) passes through unchanged, since these transforms do not validate.
package codec
