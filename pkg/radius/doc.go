// Package radius models the editable corner radii of a box.
//
// # Overview
//
// A [State] holds, for each of the four corners, two independently retained
// magnitude pairs (one in px, one in %), the active unit per axis, and a
// "linked" flag that forces the vertical radius to follow the horizontal one.
// Keeping both buckets means toggling a unit never loses the other value.
//
// The State is mutated only through four entry points:
//
//   - [State.SetValue]: lenient integer input, clamped, written to the bucket
//     of the active unit (and to the vertical axis too when linked)
//   - [State.ToggleUnit]: switch px/% for one axis (both axes when linked)
//   - [State.ToggleLink]: flip the linked flag, syncing vertical on link
//   - [State.ApplyPreset]: overwrite mode, radii and units from a [Preset]
//
// # Resolution
//
// [Resolve] turns a State into a [Derived] radius set for a symmetry [Mode].
// Modes follow the CSS shorthand value count: 1 copies top-left everywhere,
// 2 mirrors the diagonals, 3 mirrors top-right onto bottom-left and 4 keeps
// every corner independent. Mirroring flows from the top corners downward
// only, and the Derived set is rebuilt from scratch on every call.
//
// # Persistence
//
// [Encode] and [Decode] convert a State to and from the JSON blob stored by
// the persistence layer. Decode rejects blobs that lack any corner in the
// radii or unit maps; [Load] wraps it and falls back to [DefaultState].
//
//	s := radius.Load(data)
//	s.SetValue(radius.TopLeft, radius.Horizontal, "40")
//	d := s.Resolve()
//	data, _ = radius.Encode(s)
package radius
