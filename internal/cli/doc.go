// Package cli declares the program's option set, drives the getopt
// normalize/parse pipeline over the raw arguments, and handles process-level
// concerns like help display and exit codes. It translates the parsed result
// into the application's internal configuration.
package cli
