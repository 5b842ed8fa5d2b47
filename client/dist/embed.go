// Package viewerdist carries the embedded browser viewer. The server
// serves both files verbatim and treats their contents as opaque.
package viewerdist

import _ "embed"

// IndexHTML is the viewer page served at "/". It connects back to "/ws",
// feeds binary frames into jMuxer, and forwards input events as JSON.
//
//go:embed index.html
var IndexHTML []byte

// JmuxerMinJS is the H.264 remuxing library served at "/jmuxer.min.js".
//
//go:embed jmuxer.min.js
var JmuxerMinJS []byte
