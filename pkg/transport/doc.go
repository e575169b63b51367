// Package transport defines the byte stream a link driver talks over.
//
// A Transport is reopenable: the reconnect supervisor closes and reopens
// the same value instead of constructing a new one, so its configuration
// is captured once at construction.
package transport
