// Package shell turns "activate this environment" into something a caller
// can actually apply: a snippet for the invoking shell to eval (a subprocess
// cannot mutate its parent's environment), or a mutated environ slice for
// running a child process as if the environment were active.
package shell
