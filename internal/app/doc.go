// Package app contains the application lifecycle. It loads the tool
// configuration and the project, runs the engine and writes the result
// back, independent of any particular entrypoint.
package app
