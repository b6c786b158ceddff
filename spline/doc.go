// Package spline densifies an ordered list of control points into a
// polyline using Catmull-Rom interpolation.
/*

The sampler is the first stage of the path → motion-code pipeline. It is a
pure function: two calls with identical arguments produce identical output,
including floating-point bit patterns, because the blending arithmetic is
evaluated in a fixed order.

The interpolation uses the classic uniform Catmull-Rom blending

   x(t) = 0.5*( 2*P1 + (-P0+P2)*t + (2P0-5P1+4P2-P3)*t² + (-P0+3P1-3P2+P3)*t³ )

per consecutive control-point pair (P1,P2), with neighbors P0 and P3 clamped
to the valid index range at both ends. Clamping duplicates the terminal
point as a virtual neighbor, which yields a clamped (not periodic) spline
that passes through every control point.

Degenerate inputs are handled without error: an empty input samples to an
empty polyline, a single point to itself, and two points to a straight
line subdivided `resolution` times.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package spline
