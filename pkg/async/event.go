package async

import (
	"bufio"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// EnterKey is closed once a line is read from stdin.
func EnterKey() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadBytes('\n')
		close(done)
	}()
	return done
}

// Exit is closed on SIGINT or SIGTERM.
func Exit() <-chan struct{} {
	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		signal.Stop(sig)
		close(done)
	}()
	return done
}

// Any is closed as soon as one of cs is closed.
func Any(cs ...<-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	var once sync.Once
	for _, c := range cs {
		go func() {
			<-c
			once.Do(func() { close(done) })
		}()
	}
	return done
}
