// Package input tracks keyboard, mouse and window state for the frame loop.
//
// A platform backend exposes a Source of raw events ("W is down", "cursor
// moved by 3,-1"). The Tracker drains it once per frame and derives:
//
//   - edge state: IsKeyPressed is true for exactly one frame after a key goes
//     down, no matter how many repeated down reports follow;
//   - level state: IsKeyHeld, IsKeyReleased, IsButtonPressed;
//   - per-frame accumulators: mouse motion and scroll deltas summed over every
//     event of the frame;
//   - window events keyed by type, overwritten by the latest occurrence;
//   - a sticky quit request that survives frame resets until acknowledged.
//
// Typical frame:
//
//	in.Update()
//	if in.IsKeyPressed(input.KeySpace) { jump() }
//	if in.HasMouseMoved() { cam.Look(in.MouseMove()) }
//	in.EndFrame()
package input
