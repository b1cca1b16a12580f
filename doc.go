// Package ndi provides Go bindings for the NDI runtime (libndi), covering
// source discovery, frame receive, and frame send.
//
// Key pieces include:
//   - Finder for network source discovery (snapshot polling with timeout)
//   - Receiver for pulling video/audio/metadata frames from one source
//   - Sender for publishing caller-built frames as a new source
//   - VideoFrame/AudioFrame structures that are layout-compatible with the
//     native NDIlib frame structures
//
// # Architecture
//
//	Discover: Finder -> []Source
//	Receive:  Finder -> Receiver.Connect -> Capture loop -> FreeVideo/FreeAudio
//	Send:     NewVideoFrame/NewAudioFrame -> Sender.SendVideo/SendAudio
//
// # Frame Ownership
//
// Frames returned by Receiver.Capture reference memory owned by the NDI
// runtime. Every captured video or audio frame must be released exactly once
// with FreeVideo or FreeAudio before the next Capture reuses its slot.
// Frames passed to Sender.SendVideo/SendAudio reference caller-owned buffers;
// the send calls are synchronous and never take ownership, so the buffers may
// be reused as soon as the call returns.
//
// # Native Library
//
// The package loads libndi dynamically at runtime via purego (CGO_ENABLED=0).
// Set NDI_LIB_PATH to the library file or NDILIB_REDIST_FOLDER to the
// directory containing it; otherwise standard system locations are searched.
// IsAvailable reports whether the runtime could be loaded and initialized.
//
// # Lifecycle
//
// Initialize/Destroy manage the process-wide NDI runtime. Constructors call
// Initialize lazily; Destroy belongs to the application and must only run
// after all finders, receivers, and senders are closed. The lifecycle is not
// reference counted.
//
// # Concurrency
//
// Individual handles are not safe for concurrent use; serialize access to a
// given Finder/Receiver/Sender externally. Distinct handles may be used from
// different goroutines concurrently.
package ndi
