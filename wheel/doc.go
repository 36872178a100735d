// Package wheel lays out a selection wheel: equal angular segments, one per label, each with a
// palette color, sector geometry and a label anchor.
//
// Angles are degrees in screen convention: 0° points to 3 o'clock and angles grow clockwise
// (y grows downward). A rotation R turns the whole wheel clockwise by R degrees; the pointer is a
// fixed screen angle. ResolveIndex and TargetRotation share this convention, so a target produced
// for index r always resolves back to r.
package wheel
