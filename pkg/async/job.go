package async

// Job runs f in a new goroutine, the returned channel yields its error once and is then closed.
func Job(f func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- f()
		close(done)
	}()
	return done
}
