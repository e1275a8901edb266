// Package testutil provides shared test helpers for ralphloop.
//
// # Fixtures
//
//   - FixedTime, FixedClock - deterministic start times
//   - SampleState(), SampleStateUnbounded(), SampleStateAtCeiling() - loop records
//   - SampleResponseWithPromise(phrase) - response text carrying a promise tag
//
// # Environment Helpers
//
//   - SetupTestRoot(t) - temp project root with a Store at the default dir
//   - WriteStateFile(t, root, content) - raw state.json, for corrupt-file cases
//   - WriteConfigFile(t, root, content) - raw .ralphloop.yaml
//   - CaptureLogger() - logger writing to a buffer at debug level
//
// # Assertions
//
//   - AssertNoState(t, store) - nothing persisted
//   - AssertIteration(t, store, n) - persisted counter equals n
//   - AssertIgnoredOnce(t, root, entry) - ignore file lists entry exactly once
//
// # Timeouts
//
//   - ContextWithTestDeadline(t, fallback) - context bounded by the test deadline
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    root, store := testutil.SetupTestRoot(t)
//	    require.NoError(t, store.Write(testutil.SampleState()))
//	    testutil.AssertIteration(t, store, 2)
//	}
package testutil
