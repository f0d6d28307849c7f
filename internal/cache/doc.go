// Package cache provides the in-memory list that mirrors a server-side collection.
//
// A List is replaced wholesale on fetch, prepended or appended on create,
// patched in place on update and filtered on delete. Every Reset bumps a
// generation counter; callers capture it before a network call and pass it
// back when applying the result, so a response that arrives after a logout
// is dropped instead of repopulating the list.
package cache
