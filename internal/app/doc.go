// Package app wires the element registry, session, and loader together and
// drives the load or check run requested on the command line.
package app
