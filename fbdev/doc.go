// Package fbdev probes and maps Linux frame buffer devices.
//
// The package owns the raw byte region behind a display. A [Mapping] maps
// /dev/fbN into the process with MAP_SHARED and O_SYNC so every store is
// visible on the panel immediately. A [Memory] region provides the same
// contract on the heap for tests and headless rendering.
//
// # Geometry
//
// Device geometry comes from two read-only ioctls:
//
//   - FBIOGET_VSCREENINFO: resolution and bits per pixel
//   - FBIOGET_FSCREENINFO: row pitch (line_length) and mapped length (smem_len)
//
// When either query fails, [Probe] answers with [Fallback], a tightly packed
// 160x128 RGBA8888 profile. This lets the engine run against plain files.
//
// # Validation
//
// The design target is fixed. [Info.Validate] rejects any geometry other than
// 160x128 at 32 bpp, and any mapped length shorter than LineLength*Height,
// before a single byte is mapped.
package fbdev
