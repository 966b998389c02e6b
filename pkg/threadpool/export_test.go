package threadpool

// Reset exposes the test-only configuration reset to external test
// packages, which need to reconfigure the one-shot worker cap between
// determinism runs.
var Reset = reset
