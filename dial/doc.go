// Package dial simulates a circular combination dial driven by a list of
// rotations such as "L68 R48 L5".
//
// The dial has Size positions (default 100, numbered 0..99) and starts at
// Start (default 50). L turns toward lower numbers, R toward higher ones;
// both wrap around.
//
// Two counts are offered:
//   - CountLandings — rotations that finish with the dial on 0.
//   - CountClicks   — every click at which the dial points at 0, including
//     passes in the middle of a rotation and whole extra revolutions.
//
// Example:
//
//	rots, err := dial.ParseRotations("L68 L30 R48")
//	clicks, err := dial.CountClicks(rots)
package dial
