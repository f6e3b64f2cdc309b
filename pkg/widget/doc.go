// Package widget draws sketchy UI controls from rough primitives.
//
// A [Widget] reports the canvas it needs and draws itself onto a [Canvas].
// The canvas helpers inset shapes so strokes stay inside the canvas:
// rectangles shrink by 2 on every side, ellipses and arcs lose 4 from
// their width and height (1 when the size is 10 or less).
//
// Every primitive of one widget is drawn with the same options, so a
// widget keyed by one seed always looks the same.
package widget
