// Package disguise owns which presentation is on screen: the calculator or
// the covert tool.
//
// The only way forward is the unlock predicate, evaluated on every equals
// key before the calculator sees it: the whole current input must equal
// UnlockSecret and no operator may be pending. The way back is Back, which is
// always available. What Back does to covert-tool state is a ReturnPolicy.
package disguise
