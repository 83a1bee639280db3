// Package resloc resolves location strings into uniform handles for
// addressable content.
//
// Content is represented by Resource implementations backed by the local
// filesystem, URLs, fs.FS asset trees, raw bytes, or an external virtual
// filesystem reached through a narrow adapter.  A Loader turns location
// strings into Resources, consulting an ordered chain of protocol
// resolvers before applying its own default strategy.  See individual
// adapter documentation under drivers/ for more information.
package resloc
