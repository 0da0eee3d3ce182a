// Package async provides a small generic Future for running blocking calls in
// the background.
//
// Future[U] represents the result of an asynchronous computation. It can be
// awaited (Await), awaited with a bound (AwaitWithTimeout, AwaitContext) or
// polled (IsComplete, Done).
//
// # Usage
//
//	future := async.Async(ctx, messageID, func(ctx context.Context, id int64) ([]message.Response, error) {
//		return client.WaitForResponse(ctx, id, 10*time.Minute)
//	})
//
//	// Do other work...
//
//	responses, err := future.Await()
//
// WaitAll collects results of several futures in order; WaitAny returns the
// first one to finish:
//
//	index, responses, err := async.WaitAny(futures...)
//
// # Errors
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrNoFutures: returned when WaitAny is called with no futures
//
// If a context is cancelled before the function begins execution, the future
// resolves immediately with the context's error and the function is never called.
package async
