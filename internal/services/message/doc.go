// Package message exchanges internal messages between users of a company.
//
// The local mirror holds one conversation in chronological order, so sent
// messages are appended rather than prepended.
package message
