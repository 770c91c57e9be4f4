// Package cea608 decodes Scenarist SCC byte streams carrying CEA-608 line-21
// pop-on captions.
//
// The decoder replays the stream the way a caption decoder chip would: it
// keeps a cursor, a current character style, and two 15x32 character grids.
// Text and style commands compose captions into the background grid; an
// end-of-caption command swaps the grids and the foreground becomes visible.
// Each visible change is emitted as a RawCaption snapshot for the transform
// package to turn into styled cues.
//
// Only data channel 1 and pop-on mode are supported. Roll-up, paint-on, and
// CEA-708 streams are outside the decoder's scope; their commands are skipped
// without error, matching how real decoders ignore services they do not
// implement.
package cea608
