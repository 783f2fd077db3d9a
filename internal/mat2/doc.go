// Package mat2 wraps the mat2 command-line metadata scrubber.
//
// The client invokes the tool with an explicit argument list (never through a
// shell), bounds each invocation with a context deadline, and classifies exit
// codes the way mat2 defines them: 0 means a cleaned copy was produced, 1 means
// the tool refused the format, anything else is a failure. The expected output
// naming (<name>.cleaned.<ext> next to the original) also lives here so the
// rest of the code shares one definition of a cleaned artifact.
package mat2
