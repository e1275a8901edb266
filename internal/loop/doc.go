// Package loop controls the lifecycle of a Ralph loop for one project root.
//
// A loop is either absent or active. Start creates the persisted record,
// IncrementIteration advances it, and Cancel deletes it. ShouldContinue only
// evaluates: it reports whether the host should run another iteration, based
// on the completion promise found in the latest response text and on the
// iteration ceiling. Advance combines the evaluation with the matching
// mutation for hosts that want a single call per iteration.
//
// The controller never invokes a model and takes no locks. Two processes
// driving the same root race, and the last write wins.
package loop
