// Package console coordinates all terminal output for clai.
//
// Two pieces cooperate: Console serializes every write to the shared
// output stream, and Animator runs the background render loop that
// redraws the waiting indicator in place. Console owns the Animator;
// callers only ever talk to Console.
//
// # Usage
//
//	c := console.New(os.Stdout, false)
//	c.StartWaiting("Thinking...")
//	// ... long-running work; any c.Print interleaves cleanly ...
//	c.StopWaiting()
//
// Writes from any number of goroutines appear whole and in lock order,
// never merged with each other or with animation frames. Stopping the
// waiting period erases the indicator line completely.
package console
